package ll

import (
	"fmt"
)

// Analysis computes FIRST and FOLLOW sets for a grammar. Both are computed
// on demand and cached for the lifetime of the analysis object. An error
// detected during a computation is cached as well; the analysis is unusable
// afterwards.
//
// Refer to "Compilers: Principles, Techniques, and Tools" by A. Aho et al.,
// section 4.4 Top-Down Parsing.
type Analysis struct {
	g                *Grammar
	undefinedAsEmpty bool
	observer         func(Phase, int, *Table)
	firstSets        map[string]*SymbolSet // converged FIRST sets
	first, follow    *Table
	firstErr         error
	followErr        error
	passes           map[Phase]int
}

// Option configures an Analysis.
type Option func(*Analysis)

// UndefinedAsEmpty sets the policy for non-terminals which are referenced on
// a right hand side but have no productions. If false (the default), FIRST and
// FOLLOW computations fail with ErrUndefinedSymbol. If true, such non-terminals
// get an empty FIRST set; they never derive epsilon.
func UndefinedAsEmpty(b bool) Option {
	return func(ga *Analysis) {
		ga.undefinedAsEmpty = b
	}
}

// ObservePasses installs a callback, which is called after every pass of an
// iteration with a snapshot of the sets computed so far.
func ObservePasses(observer func(phase Phase, pass int, snapshot *Table)) Option {
	return func(ga *Analysis) {
		ga.observer = observer
	}
}

// NewAnalysis creates an analysis for grammar g.
func NewAnalysis(g *Grammar, opts ...Option) *Analysis {
	ga := &Analysis{g: g, passes: make(map[Phase]int)}
	for _, opt := range opts {
		opt(ga)
	}
	return ga
}

// Grammar returns the grammar under analysis.
func (ga *Analysis) Grammar() *Grammar {
	return ga.g
}

// Passes returns the number of passes a computation needed to converge,
// or 0 if it has not run.
func (ga *Analysis) Passes(phase Phase) int {
	return ga.passes[phase]
}

// First returns the FIRST sets for all non-terminals. A FIRST set contains
// the terminals which may start a derivation of a non-terminal, and epsilon
// if the non-terminal derives the empty string.
func (ga *Analysis) First() (*Table, error) {
	if ga.first == nil && ga.firstErr == nil {
		ga.first, ga.firstErr = ga.computeFirst()
	}
	return ga.first, ga.firstErr
}

// Follow returns the FOLLOW sets for all non-terminals. A FOLLOW set contains
// the terminals which may immediately follow a non-terminal in a derivation
// from the start symbol, and the end marker '$'. Follow computes FIRST sets
// first, if necessary.
func (ga *Analysis) Follow() (*Table, error) {
	if ga.follow == nil && ga.followErr == nil {
		ga.follow, ga.followErr = ga.computeFollow()
	}
	return ga.follow, ga.followErr
}

// FirstOf returns FIRST(N).
func (ga *Analysis) FirstOf(N Symbol) ([]Symbol, error) {
	t, err := ga.First()
	if err != nil {
		return nil, err
	}
	return lookup(t, N)
}

// FollowOf returns FOLLOW(N).
func (ga *Analysis) FollowOf(N Symbol) ([]Symbol, error) {
	t, err := ga.Follow()
	if err != nil {
		return nil, err
	}
	return lookup(t, N)
}

func lookup(t *Table, N Symbol) ([]Symbol, error) {
	if syms, ok := t.Set(N); ok && N.IsNonTerminal() {
		return syms, nil
	}
	return nil, fmt.Errorf("%w: %s is not a non-terminal of the grammar", ErrUndefinedSymbol, N)
}

// Nullable is true if N derives the empty string.
func (ga *Analysis) Nullable(N Symbol) (bool, error) {
	if _, err := ga.FirstOf(N); err != nil {
		return false, err
	}
	return ga.firstSets[N.Name].ContainsEpsilon(), nil
}

// FirstOfSequence returns FIRST of a string of symbols. Epsilon is part of
// the result if all symbols of seq derive the empty string, in particular if
// seq is empty.
func (ga *Analysis) FirstOfSequence(seq []Symbol) ([]Symbol, error) {
	if _, err := ga.First(); err != nil {
		return nil, err
	}
	R := NewSymbolSet()
	for _, A := range seq {
		switch A.Kind {
		case Terminal, EndMarker:
			R.Add(A)
			return R.Values(), nil
		case NonTerminal:
			F, ok := ga.firstSets[A.Name]
			if !ok {
				return nil, fmt.Errorf("%w: %s is not a non-terminal of the grammar", ErrUndefinedSymbol, A)
			}
			R.Union(F, Epsilon)
			if !F.ContainsEpsilon() {
				return R.Values(), nil
			}
		}
	}
	R.Add(ga.g.epsilonSymbol())
	return R.Values(), nil
}

// --- Fixed-point iteration -------------------------------------------------

// check makes sure the grammar may be analysed.
func (ga *Analysis) check() error {
	if ga.g == nil || ga.g.Size() == 0 {
		return ErrEmptyGrammar
	}
	if undef := ga.g.Undefined(); len(undef) > 0 {
		if !ga.undefinedAsEmpty {
			return undefinedError(undef)
		}
		tracer().Infof("treating undefined non-terminals as empty: %s", symbolsString(undef))
	}
	return nil
}

// solverState holds the sets of one computation while iterating. It is
// created per computation and dropped after convergence.
type solverState struct {
	phase   Phase
	sets    map[string]*SymbolSet
	changed bool // has any set changed during the current pass?
	pass    int
}

func newSolverState(phase Phase, nonterms []Symbol) *solverState {
	S := &solverState{phase: phase, sets: make(map[string]*SymbolSet, len(nonterms))}
	for _, N := range nonterms {
		S.sets[N.Name] = NewSymbolSet()
	}
	return S
}

func (S *solverState) of(N Symbol) *SymbolSet {
	return S.sets[N.Name]
}

func (S *solverState) add(N Symbol, A Symbol) {
	if S.sets[N.Name].Add(A) {
		tracer().Debugf("%s(%s) += %s", S.phase, N, A)
		S.changed = true
	}
}

func (S *solverState) union(N Symbol, other *SymbolSet, skip SymbolKind) {
	if S.sets[N.Name].Union(other, skip) {
		tracer().Debugf("%s(%s) ∪= %s", S.phase, N, other)
		S.changed = true
	}
}

// iterate calls step for every production until a full pass does not change
// any set. Sets are bounded by the number of terminals plus sentinels, thus
// the iteration terminates.
func (ga *Analysis) iterate(S *solverState, step func(*solverState, *Production)) {
	nonterms := ga.g.NonTerminals()
	for S.changed = true; S.changed; {
		S.changed = false
		S.pass++
		for _, N := range nonterms {
			for _, p := range ga.g.productions[N.Name] {
				step(S, p)
			}
		}
		if ga.observer != nil {
			ga.observer(S.phase, S.pass, newTable(S.phase, nonterms, S.sets))
		}
	}
	ga.passes[S.phase] = S.pass
	tracer().Infof("%s sets converged after %d passes", S.phase, S.pass)
}

func (ga *Analysis) computeFirst() (*Table, error) {
	if err := ga.check(); err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	S := newSolverState(FirstPhase, ga.g.NonTerminals())
	ga.iterate(S, ga.firstStep)
	ga.firstSets = S.sets
	return newTable(FirstPhase, ga.g.NonTerminals(), S.sets), nil
}

// firstStep scans production p left to right, adding to FIRST(LHS) until it
// hits a symbol which cannot vanish.
func (ga *Analysis) firstStep(S *solverState, p *Production) {
	N := p.LHS
	for i, A := range p.rhs {
		switch A.Kind {
		case Epsilon, Terminal:
			S.add(N, A)
			return
		case NonTerminal:
			F := S.of(A)
			S.union(N, F, Epsilon)
			if !F.ContainsEpsilon() {
				return
			}
			if i == len(p.rhs)-1 { // all of RHS may vanish
				S.add(N, ga.g.epsilonSymbol())
			}
		}
	}
}

func (ga *Analysis) computeFollow() (*Table, error) {
	if _, err := ga.First(); err != nil {
		return nil, err
	}
	S := newSolverState(FollowPhase, ga.g.NonTerminals())
	S.add(ga.g.Start(), EOF)
	ga.iterate(S, ga.followStep)
	return newTable(FollowPhase, ga.g.NonTerminals(), S.sets), nil
}

// followStep handles every non-terminal M on the RHS of production p:
// FIRST of what follows M goes to FOLLOW(M); if everything behind M may
// vanish, FOLLOW(LHS) goes to FOLLOW(M) as well.
func (ga *Analysis) followStep(S *solverState, p *Production) {
	for i, M := range p.rhs {
		if !M.IsNonTerminal() {
			continue
		}
		j := i + 1
	scan:
		for ; j < len(p.rhs); j++ {
			B := p.rhs[j]
			switch B.Kind {
			case Terminal:
				S.add(M, B)
				break scan
			case NonTerminal:
				F := ga.firstSets[B.Name]
				S.union(M, F, Epsilon)
				if !F.ContainsEpsilon() {
					break scan
				}
			}
		}
		if j == len(p.rhs) {
			S.union(M, S.of(p.LHS), Epsilon)
		}
	}
}
