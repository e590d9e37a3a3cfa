package depscli

import (
	"errors"
	"flag"
	"testing"
	"time"

	"annotkit/internal/clibase"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return o
}

func TestDefaults(t *testing.T) {
	o := mustParse(t)
	if o.Output != "text" || o.Strategy != "" || o.Timeout != 0 || o.MissingExitCode != 0 {
		t.Fatalf("bad defaults: %+v", o)
	}
}

func TestFlagsOK(t *testing.T) {
	o := mustParse(t, "-c", "deps.yaml", "--strategy", "SHELL", "--timeout", "2s", "--missing-exit-code", "4", "-o", "jsonl", "-q")
	if o.ConfigFile != "deps.yaml" || o.Strategy != "SHELL" || o.Timeout != 2*time.Second || o.MissingExitCode != 4 || o.Output != "jsonl" || !o.Quiet {
		t.Fatalf("bad parse: %+v", o)
	}
}

func TestRejects(t *testing.T) {
	cases := [][]string{
		{"--strategy", "which"},
		{"--timeout", "-1s"},
		{"--missing-exit-code", "200"},
		{"-o", "tsv"},
		{"extra"},
		{"--nope"},
	}
	for _, args := range cases {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestHelpAndExamples(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	if _, err := ParseArgs(newFS(), []string{"--examples"}); !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("want ErrPrintedAndExitOK, got %v", err)
	}
}
