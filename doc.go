/*
Package firstfollow is a toolbox for static analysis of context-free grammars.

It computes FIRST and FOLLOW sets, the standard prerequisite for building
predictive (LL) parsers. Package structure is as follows:

■ ll: Package ll reads grammars from textual production rules and computes
FIRST and FOLLOW sets for them.

■ ll/scanner: Package scanner defines the tokenizer interface used for reading
rule text, together with a lexmachine adapter in sub-package lexmach.

■ cmd/firstfollow: A command line tool and REPL for grammar experiments.

The base package contains token types which are shared between scanners and
the grammar reader.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package firstfollow
