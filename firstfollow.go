package firstfollow

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Scanners define their own constants.
type TokType int

// Token represents a fragment of rule text, as produced by a scanner.
//
// For a rule
//
//    E' -> + T E' | ε
//
// the bar separating the alternatives would be
//
//    TokType = Bar         // category as defined by the scanner
//    Lexeme  = "|"         // lexeme as it appeared in the rule
//    Span    = 13…14       // byte offsets within the rule
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span denotes a run of input, as a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span (0…0).
func (s Span) IsNull() bool {
	return s == Span{}
}

// Shift moves a span by offset n. Scanners operating on a fragment of a
// rule use it to report positions relative to the complete rule.
func (s Span) Shift(n uint64) Span {
	return Span{s[0] + n, s[1] + n}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
