package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/firstfollow/ll"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "firstfollow [rule ...]",
	Short: "Compute FIRST and FOLLOW sets of a grammar",
	Long: `firstfollow reads a context-free grammar given as production rules
"LHS -> RHS1 | RHS2 | …" and prints the FIRST and FOLLOW sets of its non-terminals.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()
	flags.StringP("grammar", "g", "", "File to read rules from ('-' for stdin)")
	flags.Bool("example", false, "Use the classic expression grammar")
	flags.String("epsilon", ll.DefaultEpsilon, "Marker for the empty production")
	flags.String("undefined", "error", "Policy for undefined non-terminals [error|empty]")
	flags.StringP("format", "f", "table", "Output format [table|tree|plain]")
	flags.BoolP("interactive", "i", false, "Start an interactive session")
	flags.String("trace", "Error", "Trace level [Debug|Info|Error]")

	for _, key := range []string{"grammar", "example", "epsilon", "undefined", "format", "interactive", "trace"} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

func initConfig() {
	viper.SetEnvPrefix("FIRSTFOLLOW")
	viper.AutomaticEnv()
}

// settings collects the configuration of a run.
type settings struct {
	grammarFile string
	example     bool
	epsilon     string
	undefined   string
	format      string
	interactive bool
}

func settingsFromViper() settings {
	return settings{
		grammarFile: viper.GetString("grammar"),
		example:     viper.GetBool("example"),
		epsilon:     viper.GetString("epsilon"),
		undefined:   strings.ToLower(viper.GetString("undefined")),
		format:      strings.ToLower(viper.GetString("format")),
		interactive: viper.GetBool("interactive"),
	}
}

func (s settings) parseOptions() []ll.ParseOption {
	return []ll.ParseOption{ll.WithEpsilon(s.epsilon)}
}

func (s settings) analysisOptions() ([]ll.Option, error) {
	switch s.undefined {
	case "", "error":
		return nil, nil
	case "empty":
		return []ll.Option{ll.UndefinedAsEmpty(true)}, nil
	}
	return nil, fmt.Errorf("unknown policy for undefined non-terminals: %q", s.undefined)
}

func run(cmd *cobra.Command, args []string) error {
	setTraceLevel(viper.GetString("trace"))
	conf := settingsFromViper()
	rules, err := collectRules(conf, args)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	if conf.interactive {
		intp, err := NewIntp(conf, rules)
		if err != nil {
			pterm.Error.Println(err.Error())
			return err
		}
		defer intp.Close()
		intp.REPL()
		return nil
	}
	if len(rules) == 0 {
		err = errors.New("no grammar given; use --grammar, --example or pass rules as arguments")
		pterm.Error.Println(err.Error())
		return err
	}
	if err = analyze(os.Stdout, conf, rules); err != nil {
		pterm.Error.Println(err.Error())
	}
	return err
}

// collectRules gathers rules from the example grammar, a grammar file and
// the command line, in this order.
func collectRules(conf settings, args []string) ([]string, error) {
	var rules []string
	if conf.example {
		rules = append(rules, exampleRules(conf.epsilon)...)
	}
	if conf.grammarFile != "" {
		r, err := loadRules(conf.grammarFile)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r...)
	}
	return append(rules, args...), nil
}

// analyze parses the rules, computes FIRST and FOLLOW and displays them.
func analyze(out io.Writer, conf settings, rules []string) error {
	opts, err := conf.analysisOptions()
	if err != nil {
		return err
	}
	g, err := ll.Parse(rules, conf.parseOptions()...)
	if err != nil {
		return err
	}
	g.Dump()
	ga := ll.NewAnalysis(g, opts...)
	first, err := ga.First()
	if err != nil {
		return err
	}
	follow, err := ga.Follow()
	if err != nil {
		return err
	}
	traceFingerprints(first, follow)
	return display(out, conf.format, ga, first, follow)
}

func traceFingerprints(tables ...*ll.Table) {
	for _, t := range tables {
		fp, err := t.Fingerprint()
		if err != nil {
			tracer().Errorf("cannot fingerprint %s table: %v", t.Phase(), err)
			continue
		}
		tracer().Debugf("%s fingerprint = %s", t.Phase(), fp)
	}
}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range []string{"firstfollow.ll", "firstfollow.scanner", "firstfollow.cli"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}
