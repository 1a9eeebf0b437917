package ll

import (
	"errors"
	"fmt"

	"github.com/npillmayer/firstfollow"
)

// Errors reported by Parse and by the analysis. Concrete errors wrap one of
// these; test with errors.Is.
var (
	ErrMalformedRule   = errors.New("malformed rule")
	ErrUndefinedSymbol = errors.New("undefined symbol reference")
	ErrEmptyGrammar    = errors.New("empty grammar")
)

// RuleError describes a rule which could not be read. It unwraps to
// ErrMalformedRule.
type RuleError struct {
	Index  int              // position of the rule in the input slice
	Rule   string           // text of the rule
	Span   firstfollow.Span // offending part of the rule, may be null
	Reason string
}

func (e *RuleError) Error() string {
	if e.Span.IsNull() {
		return fmt.Sprintf("%v #%d %q: %s", ErrMalformedRule, e.Index, e.Rule, e.Reason)
	}
	return fmt.Sprintf("%v #%d %q at %s: %s", ErrMalformedRule, e.Index, e.Rule, e.Span, e.Reason)
}

// Unwrap makes RuleError match ErrMalformedRule.
func (e *RuleError) Unwrap() error {
	return ErrMalformedRule
}

func undefinedError(syms []Symbol) error {
	return fmt.Errorf("%w: no productions for %s", ErrUndefinedSymbol, symbolsString(syms))
}
