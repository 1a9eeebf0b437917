package ll

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/firstfollow"
	"github.com/npillmayer/firstfollow/ll/scanner"
	"github.com/npillmayer/firstfollow/ll/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Separator divides left and right hand side of a rule.
const Separator = "->"

// Token types of the rule scanner.
const (
	tokSymbol firstfollow.TokType = iota + 1
	tokBar
)

var ruleLexer struct {
	once    sync.Once
	adapter *lexmach.LMAdapter
	err     error
}

// ruleScanner returns the lexmachine adapter for rule sides. The DFA is
// compiled once and shared; scanners created from it are independent.
func ruleScanner() (*lexmach.LMAdapter, error) {
	ruleLexer.once.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`[^ |]+`), lexmach.MakeToken("SYMBOL", int(tokSymbol)))
			lexer.Add([]byte(` +`), lexmach.Skip)
		}
		tokenIds := map[string]int{"|": int(tokBar)}
		ruleLexer.adapter, ruleLexer.err = lexmach.NewLMAdapter(init, []string{"|"}, tokenIds)
	})
	return ruleLexer.adapter, ruleLexer.err
}

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	epsilon string
}

// WithEpsilon sets the marker denoting the empty production. Default is 'ε'.
func WithEpsilon(marker string) ParseOption {
	return func(c *parseConfig) {
		if marker = strings.TrimSpace(marker); marker != "" {
			c.epsilon = marker
		}
	}
}

// rawRule is a rule split into tokens, before symbols are classified.
type rawRule struct {
	lhs  firstfollow.Token
	alts [][]firstfollow.Token
}

// Parse reads a grammar from a list of rules of the form
//
//     LHS -> RHS1 | RHS2 | …
//
// Every rule must contain exactly one separator "->" and a single symbol on
// the left hand side. Alternatives must not be empty; the empty production is
// written with the epsilon marker, which has to stand alone. The end marker
// '$' is reserved. Violations are reported as *RuleError.
//
// Symbols appearing on a left hand side are non-terminals. Other symbols are
// non-terminals if all of their letters are upper case, otherwise terminals.
// Rules with identical left hand sides accumulate.
func Parse(rules []string, opts ...ParseOption) (*Grammar, error) {
	conf := parseConfig{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&conf)
	}
	if len(rules) == 0 {
		return nil, ErrEmptyGrammar
	}
	raw := make([]rawRule, 0, len(rules))
	declared := make(map[string]bool)
	for i, rule := range rules {
		r, err := splitRule(i, rule, conf.epsilon)
		if err != nil {
			tracer().Errorf(err.Error())
			return nil, err
		}
		declared[r.lhs.Lexeme()] = true
		raw = append(raw, r)
	}
	g := newGrammar(conf.epsilon)
	for _, r := range raw {
		lhs := N(r.lhs.Lexeme())
		g.addNonTerminal(lhs)
		for _, alt := range r.alts {
			rhs := make([]Symbol, len(alt))
			for j, tok := range alt {
				rhs[j] = classify(tok.Lexeme(), declared, conf.epsilon)
			}
			g.addProduction(lhs, rhs)
		}
	}
	tracer().Infof("grammar has %d rules, %d non-terminals, %d terminals",
		g.Size(), g.nonterminals.Size(), g.terminals.Size())
	return g, nil
}

// splitRule tokenizes both sides of a rule and checks its shape.
func splitRule(inx int, rule string, epsilon string) (rawRule, error) {
	fail := func(span firstfollow.Span, reason string) (rawRule, error) {
		return rawRule{}, &RuleError{Index: inx, Rule: rule, Span: span, Reason: reason}
	}
	switch strings.Count(rule, Separator) {
	case 0:
		return fail(firstfollow.Span{}, "missing separator '"+Separator+"'")
	case 1:
	default:
		return fail(firstfollow.Span{}, "more than one separator '"+Separator+"'")
	}
	at := strings.Index(rule, Separator)
	lhs, err := scanSide(rule[:at], 0)
	if err != nil {
		return fail(firstfollow.Span{}, err.Error())
	}
	if len(lhs) != 1 || lhs[0].TokType() != tokSymbol {
		return fail(firstfollow.Span{0, uint64(at)}, "left hand side must be a single symbol")
	}
	r := rawRule{lhs: lhs[0]}
	if lhs[0].Lexeme() == epsilon || lhs[0].Lexeme() == EndOfInput {
		return fail(lhs[0].Span(), "reserved symbol on left hand side")
	}
	offset := at + len(Separator)
	rhs, err := scanSide(rule[offset:], uint64(offset))
	if err != nil {
		return fail(firstfollow.Span{}, err.Error())
	}
	var alt []firstfollow.Token
	altStart := firstfollow.Span{uint64(offset), uint64(offset)}
	closeAlt := func(end firstfollow.Span) error {
		if len(alt) == 0 {
			return &RuleError{Index: inx, Rule: rule, Span: firstfollow.Span{altStart.To(), end.From()},
				Reason: "empty alternative, use '" + epsilon + "' for the empty production"}
		}
		if len(alt) > 1 {
			for _, tok := range alt {
				if tok.Lexeme() == epsilon {
					return &RuleError{Index: inx, Rule: rule, Span: tok.Span(),
						Reason: "epsilon must be the only symbol of an alternative"}
				}
			}
		}
		r.alts = append(r.alts, alt)
		alt = nil
		return nil
	}
	for _, tok := range rhs {
		if tok.TokType() == tokBar {
			if err := closeAlt(tok.Span()); err != nil {
				return rawRule{}, err
			}
			altStart = tok.Span()
			continue
		}
		if tok.Lexeme() == EndOfInput {
			return fail(tok.Span(), "end marker '"+EndOfInput+"' is reserved")
		}
		alt = append(alt, tok)
	}
	end := uint64(len(rule))
	if err := closeAlt(firstfollow.Span{end, end}); err != nil {
		return rawRule{}, err
	}
	return r, nil
}

// scanSide tokenizes one side of a rule. Spans are relative to the rule.
func scanSide(text string, offset uint64) ([]firstfollow.Token, error) {
	lm, err := ruleScanner()
	if err != nil {
		return nil, err
	}
	sc, err := lm.Scanner(blanks(text))
	if err != nil {
		return nil, err
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) { scanErr = e })
	tokens := scanner.Drain(sc)
	if scanErr != nil {
		return nil, scanErr
	}
	for i, tok := range tokens {
		tokens[i] = scanner.MakeDefaultToken(tok.TokType(), tok.Lexeme(), tok.Span().Shift(offset))
	}
	return tokens, nil
}

// blanks replaces white space, including Unicode spaces, by blanks. A
// multi-byte space becomes as many blanks as it has bytes, and bytes which
// are not valid UTF-8 are copied unchanged, so byte offsets are preserved.
func blanks(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != utf8.RuneError && unicode.IsSpace(r) {
			for k := 0; k < size; k++ {
				b = append(b, ' ')
			}
		} else {
			b = append(b, s[i:i+size]...)
		}
		i += size
	}
	return string(b)
}

// classify determines the kind of a symbol token. This is done exactly once
// per token, while reading the grammar.
func classify(tok string, declared map[string]bool, epsilon string) Symbol {
	switch {
	case tok == epsilon:
		return Symbol{Kind: Epsilon, Name: tok}
	case declared[tok], isUpper(tok):
		return N(tok)
	}
	return T(tok)
}

// isUpper is true if s has at least one cased letter and all of its cased
// letters are upper case. Digits and decorations like ' do not count.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
