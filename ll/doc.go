/*
Package ll implements static grammar analysis as a prerequisite for
predictive (LL) parsing.

Reading a Grammar

Grammars are given as textual production rules, one rule per string.
Alternatives are separated by '|', symbols by white space. Epsilon-productions
are spelled with the epsilon marker 'ε'.

    g, err := ll.Parse([]string{
        "E  -> T E'",
        "E' -> + T E' | ε",
        "T  -> F T'",
        "T' -> * F T' | ε",
        "F  -> ( E ) | id",
    })

Symbols on a left hand side are non-terminals, as are all symbols whose letters
are upper case (E, E', T1). Every other symbol is a terminal. The left hand side
of the first rule is the start symbol. The grammar is dumped with

   g.Dump()

   0: [E] ::= [T E']
   1: [E'] ::= [+ T E']
   2: [E'] ::= [ε]
   …

Static Grammar Analysis

A grammar is subjected to an Analysis object, which computes FIRST and
FOLLOW sets. Both are computed on demand and cached.

    ga := ll.NewAnalysis(g)
    first, err := ga.First()    // FIRST(E) = [( id], FIRST(E') = [+ ε], …
    follow, err := ga.Follow()  // FOLLOW(E) = [$ )], FOLLOW(F) = [$ ) * +], …

Non-terminals which are referenced on a right hand side but never defined are
an error (ErrUndefinedSymbol), unless the analysis is created with option
UndefinedAsEmpty(true).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'firstfollow.ll'.
func tracer() tracing.Trace {
	return tracing.Select("firstfollow.ll")
}
