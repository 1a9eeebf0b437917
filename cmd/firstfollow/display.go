package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/firstfollow/ll"
	"github.com/pterm/pterm"
)

// display prints FIRST and FOLLOW sets in one of the formats table, tree or
// plain. Only plain output goes to out; pterm writes to the terminal.
func display(out io.Writer, format string, ga *ll.Analysis, first, follow *ll.Table) error {
	switch format {
	case "table":
		pterm.DefaultTable.WithHasHeader().WithData(tableData(first, follow)).Render()
	case "tree":
		root := pterm.NewTreeFromLeveledList(leveledList(ga.Grammar(), first, follow))
		pterm.DefaultTree.WithRoot(root).Render()
	case "plain":
		writePlain(out, first)
		writePlain(out, follow)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

// sortedNonTerminals returns the keys of t, sorted by name.
func sortedNonTerminals(t *ll.Table) []ll.Symbol {
	nonterms := t.NonTerminals()
	sort.Slice(nonterms, func(i, j int) bool {
		return nonterms[i].Name < nonterms[j].Name
	})
	return nonterms
}

func setString(t *ll.Table, N ll.Symbol) string {
	syms, _ := t.Set(N)
	return fmt.Sprintf("%v", syms)
}

func tableData(first, follow *ll.Table) pterm.TableData {
	data := pterm.TableData{{"Non-terminal", first.Phase().String(), follow.Phase().String()}}
	for _, N := range sortedNonTerminals(first) {
		data = append(data, []string{N.Name, setString(first, N), setString(follow, N)})
	}
	return data
}

// leveledList arranges the sets as a tree: non-terminals below the start
// symbol, FIRST and FOLLOW below every non-terminal.
func leveledList(g *ll.Grammar, first, follow *ll.Table) pterm.LeveledList {
	list := pterm.LeveledList{{Level: 0, Text: "grammar, start symbol " + g.Start().Name}}
	for _, N := range sortedNonTerminals(first) {
		list = append(list,
			pterm.LeveledListItem{Level: 1, Text: N.Name},
			pterm.LeveledListItem{Level: 2, Text: first.Phase().String() + " = " + setString(first, N)},
			pterm.LeveledListItem{Level: 2, Text: follow.Phase().String() + " = " + setString(follow, N)},
		)
	}
	return list
}

func writePlain(out io.Writer, t *ll.Table) {
	fmt.Fprintf(out, "%s sets:\n", t.Phase())
	for _, N := range sortedNonTerminals(t) {
		fmt.Fprintf(out, "%s(%s) = %s\n", t.Phase(), N, setString(t, N))
	}
}
