/*
Package scanner defines an interface for scanners used when reading grammar
rules, together with a default token type.

A lexmachine based implementation lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/firstfollow"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'firstfollow.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("firstfollow.scanner")
}

// EOF is the token type signalling the end of input.
// It has the same value as text/scanner.EOF.
const EOF firstfollow.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() firstfollow.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Drain reads tokens from a tokenizer until EOF and returns them.
// The EOF token itself is not part of the result.
func Drain(t Tokenizer) []firstfollow.Token {
	var tokens []firstfollow.Token
	for {
		token := t.NextToken()
		if token.TokType() == EOF {
			tracer().Debugf("tokenizer reached end of input after %d tokens", len(tokens))
			return tokens
		}
		tokens = append(tokens, token)
	}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   firstfollow.TokType
	lexeme string
	span   firstfollow.Span
}

var _ firstfollow.Token = DefaultToken{}

// MakeDefaultToken creates a token from its category, lexeme and span.
func MakeDefaultToken(typ firstfollow.TokType, lexeme string, span firstfollow.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() firstfollow.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() firstfollow.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%q%s", t.lexeme, t.span)
}
