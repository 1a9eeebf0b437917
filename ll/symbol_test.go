package ll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolSetAdd(t *testing.T) {
	S := NewSymbolSet(T("b"), T("a"))
	if S.Add(T("a")) {
		t.Errorf("Expected adding a present symbol not to change the set")
	}
	if !S.Add(T("c")) {
		t.Errorf("Expected adding a new symbol to change the set")
	}
	assert.Equal(t, 3, S.Size())
	assert.Equal(t, "[a b c]", S.String())
}

func TestSymbolSetUnion(t *testing.T) {
	S := NewSymbolSet(T("a"))
	other := NewSymbolSet(T("b"), EpsilonSymbol)
	assert.True(t, S.Union(other, Epsilon))
	assert.False(t, S.ContainsEpsilon())
	assert.False(t, S.Union(other, Epsilon), "second union must not change S")
	assert.False(t, S.Union(S, 0))
	assert.False(t, S.Union(nil, 0))
	assert.True(t, S.Union(other, 0))
	assert.True(t, S.ContainsEpsilon())
}

func TestSymbolOrder(t *testing.T) {
	S := NewSymbolSet(Symbol{Kind: Epsilon, Name: "eps"}, T("+"), EOF, T(")"), T("id"))
	assert.Equal(t, []Symbol{EOF, T(")"), T("+"), T("id"), {Kind: Epsilon, Name: "eps"}}, S.Values())
	assert.True(t, S.ContainsEpsilon(), "epsilons are equal regardless of spelling")
	assert.False(t, S.Contains(N("id")), "kind is part of identity")
}

func TestSymbolSetCopy(t *testing.T) {
	S := NewSymbolSet(T("a"))
	C := S.Copy()
	C.Add(T("b"))
	assert.Equal(t, 1, S.Size())
	assert.Equal(t, 2, C.Size())
	assert.True(t, NewSymbolSet().Empty())
}

func TestSymbolKinds(t *testing.T) {
	assert.True(t, T("a").IsTerminal())
	assert.True(t, N("A").IsNonTerminal())
	assert.True(t, EpsilonSymbol.IsEpsilon())
	assert.False(t, EOF.IsTerminal())
	assert.Equal(t, "non-terminal", NonTerminal.String())
	assert.Equal(t, "end-marker", EOF.Kind.String())
}
