package ll

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SymbolKind classifies grammar symbols.
type SymbolKind uint8

// Kinds of symbols. Epsilon and EndMarker are sentinels and will never be
// produced for ordinary tokens of rule text.
const (
	Terminal SymbolKind = iota + 1
	NonTerminal
	Epsilon
	EndMarker
)

func (k SymbolKind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "non-terminal"
	case Epsilon:
		return "epsilon"
	case EndMarker:
		return "end-marker"
	}
	return fmt.Sprintf("SymbolKind(%d)", k)
}

// Symbol is a grammar symbol. Symbols are values and may be compared with ==.
type Symbol struct {
	Kind SymbolKind
	Name string
}

// Default texts for the sentinel symbols.
const (
	DefaultEpsilon = "ε"
	EndOfInput     = "$"
)

// Sentinel symbols.
var (
	EpsilonSymbol = Symbol{Kind: Epsilon, Name: DefaultEpsilon}
	EOF           = Symbol{Kind: EndMarker, Name: EndOfInput}
)

// T creates a terminal symbol.
func T(name string) Symbol {
	return Symbol{Kind: Terminal, Name: name}
}

// N creates a non-terminal symbol.
func N(name string) Symbol {
	return Symbol{Kind: NonTerminal, Name: name}
}

// IsTerminal is true for terminals only, not for sentinels.
func (A Symbol) IsTerminal() bool {
	return A.Kind == Terminal
}

// IsNonTerminal is true for non-terminals.
func (A Symbol) IsNonTerminal() bool {
	return A.Kind == NonTerminal
}

// IsEpsilon is true for the epsilon sentinel.
func (A Symbol) IsEpsilon() bool {
	return A.Kind == Epsilon
}

func (A Symbol) String() string {
	return A.Name
}

// symbolComparator orders symbols by text, then by kind. Epsilon sorts
// behind everything else; it may be spelled differently per grammar, all
// epsilons are equal.
func symbolComparator(a, b interface{}) int {
	A, B := a.(Symbol), b.(Symbol)
	switch {
	case A.Kind == Epsilon && B.Kind == Epsilon:
		return 0
	case A.Kind == Epsilon:
		return 1
	case B.Kind == Epsilon:
		return -1
	}
	if c := utils.StringComparator(A.Name, B.Name); c != 0 {
		return c
	}
	return utils.IntComparator(int(A.Kind), int(B.Kind))
}

// --- Symbol sets -----------------------------------------------------------

// SymbolSet is a sorted set of symbols. FIRST and FOLLOW sets are SymbolSets
// during computation. Sets only grow; there is no operation to remove a symbol.
type SymbolSet struct {
	set *treeset.Set
}

// NewSymbolSet creates a set containing symbols syms.
func NewSymbolSet(syms ...Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	S.Add(syms...)
	return S
}

// Add adds symbols and reports whether the set has changed.
func (S *SymbolSet) Add(syms ...Symbol) bool {
	l := S.set.Size()
	for _, A := range syms {
		S.set.Add(A)
	}
	return S.set.Size() != l
}

// Union adds all symbols of other except the ones of kind skip. It reports
// whether S has changed.
func (S *SymbolSet) Union(other *SymbolSet, skip SymbolKind) bool {
	if other == nil || other == S {
		return false
	}
	l := S.set.Size()
	it := other.set.Iterator()
	for it.Next() {
		if A := it.Value().(Symbol); A.Kind != skip {
			S.set.Add(A)
		}
	}
	return S.set.Size() != l
}

// Contains checks for membership of A.
func (S *SymbolSet) Contains(A Symbol) bool {
	return S.set.Contains(A)
}

// ContainsEpsilon is a shortcut for checking for the epsilon sentinel.
func (S *SymbolSet) ContainsEpsilon() bool {
	return S.set.Contains(EpsilonSymbol)
}

// Size returns the number of symbols in S.
func (S *SymbolSet) Size() int {
	return S.set.Size()
}

// Empty is true if S contains no symbols.
func (S *SymbolSet) Empty() bool {
	return S.set.Empty()
}

// Values returns the symbols of S in sorted order.
func (S *SymbolSet) Values() []Symbol {
	syms := make([]Symbol, 0, S.set.Size())
	for _, x := range S.set.Values() {
		syms = append(syms, x.(Symbol))
	}
	return syms
}

// Copy returns a shallow copy of S.
func (S *SymbolSet) Copy() *SymbolSet {
	return NewSymbolSet(S.Values()...)
}

func (S *SymbolSet) String() string {
	return symbolsString(S.Values())
}

func symbolsString(syms []Symbol) string {
	var b bytes.Buffer
	b.WriteString("[")
	for i, A := range syms {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.Name)
	}
	b.WriteString("]")
	return b.String()
}
