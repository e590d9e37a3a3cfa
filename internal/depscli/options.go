package depscli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"annotkit/internal/cli"
	"annotkit/internal/clibase"
	"annotkit/internal/cliutil"
	"annotkit/internal/deps"
)

const Name = "annot-checkdeps"

// Formats are the --output values annot-checkdeps accepts.
var Formats = []string{cli.FormatText, cli.FormatJSON, cli.FormatJSONL}

type Options struct {
	clibase.Common

	ConfigFile      string
	Strategy        string
	Timeout         time.Duration
	MissingExitCode int
}

func strategyNames() []string {
	var out []string
	for _, s := range deps.Strategies() {
		out = append(out, string(s))
	}
	return out
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := cli.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "check the gene-finding toolchain is installed", Formats, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options]\n", name)

		_, _ = fmt.Fprintln(out, "\nDependencies:")
		_, _ = fmt.Fprintln(out, "  -c, --config file           YAML dependency table (default: built-in table)")
		_, _ = fmt.Fprintf(out, "      --strategy string       Resolution for every entry: %s [per entry]\n", strings.Join(strategyNames(), " | "))
		_, _ = fmt.Fprintf(out, "      --timeout duration      Per-lookup time limit, 0 = none [%s]\n", def("timeout"))
		_, _ = fmt.Fprintf(out, "      --missing-exit-code int Exit code when anything is missing [%s]\n", def("missing-exit-code"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for annot-checkdeps.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, Name, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Check the built-in table against $PATH:")
		_, _ = fmt.Fprintf(w, "  %s\n", Name)
		_, _ = fmt.Fprintln(w, "\nUse the shell's own lookup and fail a CI job on gaps:")
		_, _ = fmt.Fprintf(w, "  %s --strategy shell --missing-exit-code 1\n", Name)
		_, _ = fmt.Fprintln(w, "\nCheck a site-specific table, machine readable:")
		_, _ = fmt.Fprintf(w, "  %s --config /software/pathogen/deps.yaml -o jsonl\n", Name)
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common)

	fs.StringVar(&o.ConfigFile, "config", "", "YAML dependency table")
	fs.StringVar(&o.ConfigFile, "c", "", "alias of --config")
	fs.StringVar(&o.Strategy, "strategy", "", "override resolution strategy for every entry")
	fs.DurationVar(&o.Timeout, "timeout", 0, "per-lookup time limit [0 = none]")
	fs.IntVar(&o.MissingExitCode, "missing-exit-code", 0, "exit code when a dependency is missing [0]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if o.Examples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if o.Help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	if len(posArgs) > 0 {
		return o, fmt.Errorf("unexpected argument %q", posArgs[0])
	}
	if err := clibase.Validate(&o.Common, Formats...); err != nil {
		return o, err
	}
	if o.Strategy != "" {
		if _, err := deps.ParseStrategy(o.Strategy); err != nil {
			return o, cli.OneOf("strategy", o.Strategy, strategyNames()...)
		}
	}
	if err := cli.NonNegativeDuration("timeout", o.Timeout); err != nil {
		return o, err
	}
	if o.MissingExitCode < 0 || o.MissingExitCode > 125 {
		return o, fmt.Errorf("--missing-exit-code must be in 0..125")
	}
	return o, nil
}
