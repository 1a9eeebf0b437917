package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/firstfollow/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var plainSettings = settings{epsilon: ll.DefaultEpsilon, undefined: "error", format: "plain"}

func TestReadRules(t *testing.T) {
	input := `# expression grammar
E -> T E'

   E' -> + T E' | ε
# end
`
	rules, err := readRules(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"E -> T E'", "E' -> + T E' | ε"}, rules)
}

func TestLoadRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.cli")
	defer teardown()
	//
	name := filepath.Join(t.TempDir(), "expr.grammar")
	require.NoError(t, os.WriteFile(name, []byte(strings.Join(exampleGrammar, "\n")), 0644))
	rules, err := loadRules(name)
	require.NoError(t, err)
	assert.Equal(t, exampleGrammar, rules)
	_, err = loadRules(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestCollectRules(t *testing.T) {
	conf := plainSettings
	conf.example = true
	rules, err := collectRules(conf, []string{"X -> x"})
	require.NoError(t, err)
	assert.Len(t, rules, len(exampleGrammar)+1)
	assert.Equal(t, "X -> x", rules[len(rules)-1])
}

func TestAnalyzePlain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	var out bytes.Buffer
	require.NoError(t, analyze(&out, plainSettings, exampleGrammar))
	text := out.String()
	assert.Contains(t, text, "FIRST(E') = [+ ε]")
	assert.Contains(t, text, "FOLLOW(F) = [$ ) * +]")
	assert.True(t, strings.Index(text, "FIRST(E)") < strings.Index(text, "FIRST(F)"), "sorted output")
}

func TestExampleCustomEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	conf := plainSettings
	conf.epsilon = "eps"
	conf.example = true
	rules, err := collectRules(conf, nil)
	require.NoError(t, err)
	assert.Equal(t, "E' -> + T E' | eps", rules[1])
	var out bytes.Buffer
	require.NoError(t, analyze(&out, conf, rules))
	text := out.String()
	assert.Contains(t, text, "FIRST(E') = [+ eps]")
	assert.Contains(t, text, "FOLLOW(F) = [$ ) * +]")
	assert.Contains(t, text, "FOLLOW(T) = [$ ) +]")
	assert.NotContains(t, text, "ε")
	//
	out.Reset()
	intp := &Intp{conf: conf, out: &out}
	_, err = intp.Eval(":example")
	require.NoError(t, err)
	_, err = intp.Eval(":follow")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "FOLLOW(T') = [$ ) +]")
	assert.Equal(t, exampleGrammar, exampleRules(""))
}

func TestAnalyzeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	var out bytes.Buffer
	err := analyze(&out, plainSettings, []string{"S -> A b"})
	assert.True(t, errors.Is(err, ll.ErrUndefinedSymbol))
	conf := plainSettings
	conf.undefined = "empty"
	require.NoError(t, analyze(&out, conf, []string{"S -> A b"}))
	assert.Contains(t, out.String(), "FOLLOW(A) = [b]")
	conf.undefined = "maybe"
	assert.Error(t, analyze(&out, conf, exampleGrammar))
	conf = plainSettings
	conf.format = "html"
	assert.Error(t, analyze(&out, conf, exampleGrammar))
	assert.True(t, errors.Is(analyze(&out, plainSettings, []string{"S a"}), ll.ErrMalformedRule))
}

func TestTableData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	g, err := ll.Parse(exampleGrammar)
	require.NoError(t, err)
	ga := ll.NewAnalysis(g)
	first, err := ga.First()
	require.NoError(t, err)
	follow, err := ga.Follow()
	require.NoError(t, err)
	data := tableData(first, follow)
	require.Len(t, data, 6)
	assert.Equal(t, []string{"Non-terminal", "FIRST", "FOLLOW"}, data[0])
	assert.Equal(t, []string{"E", "[( id]", "[$ )]"}, data[1])
	list := leveledList(g, first, follow)
	assert.Len(t, list, 1+3*5)
	assert.Equal(t, "grammar, start symbol E", list[0].Text)
}

func TestIntpEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	var out bytes.Buffer
	intp := &Intp{conf: plainSettings, out: &out}
	for _, rule := range []string{"S -> a S b | ε", "# no rule"} {
		intp.Eval(rule)
	}
	assert.Len(t, intp.rules, 1)
	_, err := intp.Eval("S -> a |")
	assert.True(t, errors.Is(err, ll.ErrMalformedRule))
	_, err = intp.Eval("hello")
	assert.Equal(t, errUnknownInput, err)
	_, err = intp.Eval(":follow")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "FOLLOW(S) = [$ b]")
	out.Reset()
	_, err = intp.Eval(":rules")
	require.NoError(t, err)
	assert.Equal(t, "S -> a S b | ε\n", out.String())
	_, err = intp.Eval(":clear")
	require.NoError(t, err)
	assert.Empty(t, intp.rules)
	_, err = intp.Eval(":first")
	assert.True(t, errors.Is(err, ll.ErrEmptyGrammar))
	_, err = intp.Eval(":example")
	require.NoError(t, err)
	out.Reset()
	_, err = intp.Eval(":first")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "FIRST(T') = [* ε]")
	_, err = intp.Eval(":bogus")
	assert.Error(t, err)
	quit, err := intp.Eval(":quit")
	require.NoError(t, err)
	assert.True(t, quit)
}
