package ll

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
)

// Production is a right hand side alternative for a non-terminal.
// The empty production has a RHS consisting of a single epsilon.
type Production struct {
	Serial int    // order number of this production within the grammar
	LHS    Symbol // left hand side, always a non-terminal
	rhs    []Symbol
}

// RHS returns a copy of the right hand side symbols.
func (p *Production) RHS() []Symbol {
	rhs := make([]Symbol, len(p.rhs))
	copy(rhs, p.rhs)
	return rhs
}

// Len is the number of symbols on the right hand side.
func (p *Production) Len() int {
	return len(p.rhs)
}

// IsEpsilon is true for an empty production.
func (p *Production) IsEpsilon() bool {
	return len(p.rhs) == 1 && p.rhs[0].IsEpsilon()
}

func (p *Production) String() string {
	return fmt.Sprintf("[%s] ::= %s", p.LHS, symbolsString(p.rhs))
}

// Grammar is a context-free grammar read from textual rules. Create one
// with Parse. Grammars are immutable.
type Grammar struct {
	epsilon      string                   // text of the epsilon marker
	nonterminals *arraylist.List          // in order of first appearance
	terminals    *treeset.Set             // sorted by name
	productions  map[string][]*Production // LHS name → alternatives
	rules        []*Production            // all productions by serial number
}

func newGrammar(epsilon string) *Grammar {
	return &Grammar{
		epsilon:      epsilon,
		nonterminals: arraylist.New(),
		terminals:    treeset.NewWith(symbolComparator),
		productions:  make(map[string][]*Production),
	}
}

// Start returns the start symbol, i.e. the left hand side of the first rule.
func (g *Grammar) Start() Symbol {
	S, _ := g.nonterminals.Get(0) // Parse guarantees at least one rule
	return S.(Symbol)
}

// Epsilon returns the text of the epsilon marker used in g.
func (g *Grammar) Epsilon() string {
	return g.epsilon
}

// NonTerminals returns all non-terminals, in order of their first
// appearance within the rules. The first entry is the start symbol.
func (g *Grammar) NonTerminals() []Symbol {
	syms := make([]Symbol, 0, g.nonterminals.Size())
	for _, x := range g.nonterminals.Values() {
		syms = append(syms, x.(Symbol))
	}
	return syms
}

// Terminals returns all terminals, sorted by name.
func (g *Grammar) Terminals() []Symbol {
	syms := make([]Symbol, 0, g.terminals.Size())
	for _, x := range g.terminals.Values() {
		syms = append(syms, x.(Symbol))
	}
	return syms
}

// Productions returns the alternatives for non-terminal N, in textual order.
func (g *Grammar) Productions(N Symbol) []*Production {
	prods := g.productions[N.Name]
	r := make([]*Production, len(prods))
	copy(r, prods)
	return r
}

// Rules returns all productions ordered by serial number.
func (g *Grammar) Rules() []*Production {
	r := make([]*Production, len(g.rules))
	copy(r, g.rules)
	return r
}

// Rule returns production no. i, or nil if out of range.
func (g *Grammar) Rule(i int) *Production {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Symbol looks up a terminal or non-terminal by name.
func (g *Grammar) Symbol(name string) (Symbol, bool) {
	if name == g.epsilon {
		return Symbol{Kind: Epsilon, Name: name}, true
	}
	if A := N(name); g.nonterminals.Contains(A) {
		return A, true
	}
	if A := T(name); g.terminals.Contains(A) {
		return A, true
	}
	return Symbol{}, false
}

// IsDefined is true if N has at least one production.
func (g *Grammar) IsDefined(N Symbol) bool {
	return N.IsNonTerminal() && len(g.productions[N.Name]) > 0
}

// Undefined returns the non-terminals which are referenced on a right hand
// side but do not have productions.
func (g *Grammar) Undefined() []Symbol {
	var undef []Symbol
	for _, N := range g.NonTerminals() {
		if !g.IsDefined(N) {
			undef = append(undef, N)
		}
	}
	return undef
}

// EachNonTerminal iterates over all non-terminals of the grammar and calls a
// mapper function for each. Results are collected in order.
func (g *Grammar) EachNonTerminal(mapper func(N Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, N := range g.NonTerminals() {
		r = append(r, mapper(N))
	}
	return r
}

// Dump is a debugging helper, listing all productions to the tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar ----------------------------------")
	for _, p := range g.rules {
		tracer().Debugf("%3d: %s", p.Serial, p)
	}
	tracer().Debugf("----------------------------------------------")
}

// String renders g in rule notation, one line per defined non-terminal.
func (g *Grammar) String() string {
	var b bytes.Buffer
	for _, N := range g.NonTerminals() {
		prods := g.productions[N.Name]
		if len(prods) == 0 {
			continue
		}
		b.WriteString(N.Name)
		b.WriteString(" -> ")
		for i, p := range prods {
			if i > 0 {
				b.WriteString(" | ")
			}
			for j, A := range p.rhs {
				if j > 0 {
					b.WriteString(" ")
				}
				b.WriteString(A.Name)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// --- Construction ----------------------------------------------------------

func (g *Grammar) addNonTerminal(A Symbol) {
	if !g.nonterminals.Contains(A) {
		g.nonterminals.Add(A)
	}
}

func (g *Grammar) addProduction(lhs Symbol, rhs []Symbol) *Production {
	p := &Production{Serial: len(g.rules), LHS: lhs, rhs: rhs}
	g.rules = append(g.rules, p)
	g.productions[lhs.Name] = append(g.productions[lhs.Name], p)
	for _, A := range rhs {
		switch A.Kind {
		case NonTerminal:
			g.addNonTerminal(A)
		case Terminal:
			g.terminals.Add(A)
		}
	}
	return p
}

func (g *Grammar) epsilonSymbol() Symbol {
	return Symbol{Kind: Epsilon, Name: g.epsilon}
}
