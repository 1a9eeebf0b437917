/*
Package lexmach provides an adapter to use the lexmachine scanner generator for
reading grammar rules.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing literals and regular expressions.
Package lexmach is opinionated on how to do the setup of lexmachine.

	var literals []string       // The tokens representing literal strings, e.g. "|"
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   firstfollow.Token
		lexer.Add([]byte(`[^ |]+`), lexmach.MakeToken("SYMBOL", tokenIds["SYMBOL"]))
		lexer.Add([]byte(` +`), lexmach.Skip)
	}

Having that, clients use `NewLMAdapter` to wrap lexmachine into a scanner.Tokenizer.
NewLMAdapter will return an error if compiling the DFA failed.

	LM, err := NewLMAdapter(init, literals, tokenIds)

A scanner is instantiated for each concrete input sequence (one side of a rule,
for package ll). Tokens are read until EOF.

	scan, err := LM.Scanner("+ T E' | ε")
	for _, token := range scanner.Drain(scan) {
		…
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
