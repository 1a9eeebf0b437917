package ll

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
)

// Phase identifies one of the set computations.
type Phase uint8

// Set computations of an analysis.
const (
	FirstPhase Phase = iota + 1
	FollowPhase
)

func (p Phase) String() string {
	switch p {
	case FirstPhase:
		return "FIRST"
	case FollowPhase:
		return "FOLLOW"
	}
	return fmt.Sprintf("Phase(%d)", p)
}

// Table maps non-terminals to FIRST or FOLLOW sets. Tables are read-only;
// all accessors return copies.
type Table struct {
	phase Phase
	order []Symbol            // non-terminals in grammar order
	sets  map[string][]Symbol // sorted symbols per non-terminal
}

func newTable(phase Phase, order []Symbol, sets map[string]*SymbolSet) *Table {
	t := &Table{
		phase: phase,
		order: order,
		sets:  make(map[string][]Symbol, len(order)),
	}
	for _, N := range order {
		if S, ok := sets[N.Name]; ok {
			t.sets[N.Name] = S.Values()
		} else {
			t.sets[N.Name] = []Symbol{}
		}
	}
	return t
}

// Phase tells whether t holds FIRST or FOLLOW sets.
func (t *Table) Phase() Phase {
	return t.phase
}

// NonTerminals returns the keys of t in grammar order.
func (t *Table) NonTerminals() []Symbol {
	r := make([]Symbol, len(t.order))
	copy(r, t.order)
	return r
}

// Set returns the sorted symbols for non-terminal N. The second return value
// is false if N is not part of the table.
func (t *Table) Set(N Symbol) ([]Symbol, bool) {
	syms, ok := t.sets[N.Name]
	if !ok {
		return nil, false
	}
	r := make([]Symbol, len(syms))
	copy(r, syms)
	return r, true
}

// Contains checks if A is a member of the set for N.
func (t *Table) Contains(N Symbol, A Symbol) bool {
	for _, B := range t.sets[N.Name] {
		if symbolComparator(A, B) == 0 {
			return true
		}
	}
	return false
}

// Equals compares two tables set by set.
func (t *Table) Equals(other *Table) bool {
	if other == nil || t.phase != other.phase || len(t.sets) != len(other.sets) {
		return false
	}
	for name, syms := range t.sets {
		osyms, ok := other.sets[name]
		if !ok || len(osyms) != len(syms) {
			return false
		}
		for i := range syms {
			if syms[i] != osyms[i] {
				return false
			}
		}
	}
	return true
}

// tableDigest is the hashed representation of a table.
type tableDigest struct {
	Phase string
	Sets  map[string][]string
}

// Fingerprint returns a hash of the table contents. Tables with equal
// contents have equal fingerprints.
func (t *Table) Fingerprint() (string, error) {
	d := tableDigest{Phase: t.phase.String(), Sets: make(map[string][]string, len(t.sets))}
	for name, syms := range t.sets {
		names := make([]string, len(syms))
		for i, A := range syms {
			names[i] = A.Name
		}
		d.Sets[name] = names
	}
	return structhash.Hash(d, 1)
}

func (t *Table) String() string {
	var b bytes.Buffer
	for _, N := range t.order {
		b.WriteString(fmt.Sprintf("%s(%s) = %s\n", t.phase, N, symbolsString(t.sets[N.Name])))
	}
	return b.String()
}
