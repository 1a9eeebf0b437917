package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/firstfollow/ll"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object. It collects rules entered by the user and
// analyses them on request.
type Intp struct {
	conf  settings
	rules []string
	repl  *readline.Instance
	out   io.Writer
}

var errUnknownInput = errors.New("neither a rule nor a command; try :help")

// NewIntp creates an interpreter, pre-loaded with rules.
func NewIntp(conf settings, rules []string) (*Intp, error) {
	repl, err := readline.New("ff> ")
	if err != nil {
		return nil, err
	}
	return &Intp{conf: conf, rules: rules, repl: repl, out: os.Stdout}, nil
}

// Close releases the terminal.
func (intp *Intp) Close() {
	if intp.repl != nil {
		intp.repl.Close()
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	pterm.Info.Println("Welcome to firstfollow")
	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval handles a single line of input, which is either a rule or a command.
// It returns true if the user wants to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.Execute(strings.Fields(line[1:]))
	}
	if !strings.Contains(line, ll.Separator) {
		return false, errUnknownInput
	}
	if _, err := ll.Parse([]string{line}, intp.conf.parseOptions()...); err != nil {
		return false, err
	}
	intp.rules = append(intp.rules, line)
	pterm.Info.Println(fmt.Sprintf("rule #%d added", len(intp.rules)))
	return false, nil
}

// Execute runs a command, given as a command name and arguments.
func (intp *Intp) Execute(args []string) (bool, error) {
	if len(args) == 0 {
		return false, errUnknownInput
	}
	switch cmd := args[0]; cmd {
	case "quit", "q":
		return true, nil
	case "help", "h":
		fmt.Fprintln(intp.out, `  <LHS> -> <RHS> | …   add a rule
  :first              show FIRST sets
  :follow             show FIRST and FOLLOW sets
  :rules              show the grammar
  :clear              remove all rules
  :load <file>        add rules from a file
  :example            add the expression grammar
  :quit               leave`)
	case "rules":
		g, err := intp.grammar()
		if err != nil {
			return false, err
		}
		fmt.Fprint(intp.out, g.String())
	case "first":
		g, err := intp.grammar()
		if err != nil {
			return false, err
		}
		opts, err := intp.conf.analysisOptions()
		if err != nil {
			return false, err
		}
		first, err := ll.NewAnalysis(g, opts...).First()
		if err != nil {
			return false, err
		}
		writePlain(intp.out, first)
	case "follow":
		return false, analyze(intp.out, intp.conf, intp.rules)
	case "clear":
		intp.rules = nil
	case "load":
		if len(args) != 2 {
			return false, errors.New("usage: :load <file>")
		}
		rules, err := loadRules(args[1])
		if err != nil {
			return false, err
		}
		intp.rules = append(intp.rules, rules...)
	case "example":
		intp.rules = append(intp.rules, exampleRules(intp.conf.epsilon)...)
	default:
		return false, fmt.Errorf("unknown command :%s; try :help", cmd)
	}
	return false, nil
}

func (intp *Intp) grammar() (*ll.Grammar, error) {
	return ll.Parse(intp.rules, intp.conf.parseOptions()...)
}
