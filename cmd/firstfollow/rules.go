package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/firstfollow/ll"
)

// The classic expression grammar, available with --example. It is spelled
// with the default epsilon marker; use exampleRules to get it for a
// configured marker.
//
//  E  ➞ T E'
//  E' ➞ + T E'  |  ε
//  T  ➞ F T'
//  T' ➞ * F T'  |  ε
//  F  ➞ ( E )  |  id
//
var exampleGrammar = []string{
	"E -> T E'",
	"E' -> + T E' | ε",
	"T -> F T'",
	"T' -> * F T' | ε",
	"F -> ( E ) | id",
}

// exampleRules returns the example grammar with epsilon as the marker for
// the empty production.
func exampleRules(epsilon string) []string {
	if epsilon = strings.TrimSpace(epsilon); epsilon == "" {
		epsilon = ll.DefaultEpsilon
	}
	rules := make([]string, len(exampleGrammar))
	for i, rule := range exampleGrammar {
		rules[i] = strings.ReplaceAll(rule, ll.DefaultEpsilon, epsilon)
	}
	return rules
}

// readRules reads one rule per line. Blank lines and lines starting with '#'
// are skipped.
func readRules(r io.Reader) ([]string, error) {
	var rules []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rules = append(rules, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}

// loadRules reads rules from a file, or from stdin if filename is "-".
func loadRules(filename string) ([]string, error) {
	if filename == "-" {
		return readRules(os.Stdin)
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("unable to open grammar file: %s", filename)
		return nil, err
	}
	defer f.Close()
	rules, err := readRules(f)
	tracer().Infof("read %d rules from %s", len(rules), filename)
	return rules, err
}
