/*
Command firstfollow computes FIRST and FOLLOW sets for a grammar.

Rules are read from a file (one rule per line, lines starting with '#' are
comments), from the command line, or entered interactively:

    firstfollow --example
    firstfollow -g expr.grammar --format tree
    firstfollow "S -> a S b | ε"
    firstfollow -i

Flags may be set from the environment, prefixed with FIRSTFOLLOW_, e.g.
FIRSTFOLLOW_FORMAT=plain.

In interactive mode every line containing "->" adds a rule. Commands start
with a colon; ":help" lists them. Quit with <ctrl>D or ":quit".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'firstfollow.cli'
func tracer() tracing.Trace {
	return tracing.Select("firstfollow.cli")
}
