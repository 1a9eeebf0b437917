package lexmach

import (
	"testing"

	"github.com/npillmayer/firstfollow"
	"github.com/npillmayer/firstfollow/ll/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"E",
	"T E'",
	"+ T E' | ε",
	"( E ) | id",
	"   ",
	"a|b||c",
}

var tokenCounts = []int{1, 2, 5, 5, 0, 6}

const (
	tokSymbol = 1
	tokBar    = 2
)

func makeAdapter(t *testing.T) *LMAdapter {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[^ |]+`), MakeToken("SYMBOL", tokSymbol))
		lexer.Add([]byte(` +`), Skip)
	}
	tokenIds := map[string]int{"|": tokBar}
	LM, err := NewLMAdapter(init, []string{"|"}, tokenIds)
	require.NoError(t, err)
	return LM
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		tokens := scanner.Drain(sc)
		for _, token := range tokens {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
		}
		if len(tokens) != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], len(tokens))
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, err := LM.Scanner("+ T E' | ε")
	require.NoError(t, err)
	tokens := scanner.Drain(sc)
	require.Len(t, tokens, 5)
	assert.Equal(t, "E'", tokens[2].Lexeme())
	assert.Equal(t, firstfollow.Span{4, 6}, tokens[2].Span())
	assert.Equal(t, firstfollow.TokType(tokBar), tokens[3].TokType())
	assert.Equal(t, "ε", tokens[4].Lexeme()) // multi-byte symbol stays in one piece
	assert.Equal(t, uint64(2), tokens[4].Span().Len())
	eof := sc.NextToken()
	assert.Equal(t, scanner.EOF, eof.TokType())
	assert.Equal(t, uint64(len("+ T E' | ε")), eof.Span().From())
}

func TestLMErrorHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.scanner")
	defer teardown()
	//
	init := func(lexer *lexmachine.Lexer) { // only lowercase letters and blanks
		lexer.Add([]byte(`[a-z]+`), MakeToken("WORD", tokSymbol))
		lexer.Add([]byte(` +`), Skip)
	}
	LM, err := NewLMAdapter(init, nil, nil)
	require.NoError(t, err)
	sc, err := LM.Scanner("ab 7 cd")
	require.NoError(t, err)
	var errs []error
	sc.SetErrorHandler(func(e error) { errs = append(errs, e) })
	tokens := scanner.Drain(sc)
	assert.Len(t, tokens, 2)
	assert.NotEmpty(t, errs, "expected unmatched input to be reported")
}
