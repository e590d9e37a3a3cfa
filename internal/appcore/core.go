// internal/appcore/core.go
package appcore

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"annotkit/internal/clibase"
	"annotkit/internal/cmdutil"
	"annotkit/internal/metrics"
	"annotkit/internal/version"
)

// Options is satisfied by every tool's options struct through the
// embedded clibase.Common.
type Options interface {
	Shared() clibase.Common
}

// Tool describes one command for the shared command-line handling.
type Tool[O Options] struct {
	Name          string
	NewFlagSet    func(name string) *flag.FlagSet
	ParseArgs     func(fs *flag.FlagSet, argv []string) (O, error)
	PrintExamples func(out io.Writer)
}

// Parse handles everything that ends a run before any work starts:
// help, examples, version, missing required flags (usage, exit 0) and
// malformed command lines (usage, exit 2). When done is true the caller
// returns code.
func (t Tool[O]) Parse(argv []string, outw *bufio.Writer, stderr io.Writer) (opts O, code int, done bool) {
	fs := t.NewFlagSet(t.Name)
	fs.SetOutput(io.Discard) // silence default flag pkg

	usage := func(code int) int {
		fs.SetOutput(outw)
		fs.Usage()
		return cmdutil.Flush(outw, stderr, code)
	}

	if len(argv) == 0 {
		_, _ = t.ParseArgs(fs, []string{"-h"})
		return opts, usage(cmdutil.ExitOK), true
	}

	opts, err := t.ParseArgs(fs, argv)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		return opts, usage(cmdutil.ExitOK), true
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		t.PrintExamples(outw)
		return opts, cmdutil.Flush(outw, stderr, cmdutil.ExitOK), true
	case errors.Is(err, clibase.ErrMissingRequired):
		_, _ = fmt.Fprintln(stderr, err)
		return opts, usage(cmdutil.ExitOK), true
	default:
		_, _ = fmt.Fprintln(stderr, err)
		return opts, usage(cmdutil.ExitUsage), true
	}

	if opts.Shared().Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", t.Name, version.Version)
		return opts, cmdutil.Flush(outw, stderr, cmdutil.ExitOK), true
	}
	return opts, 0, false
}

// NewRecorder returns a metrics recorder when path is set, else nil.
func NewRecorder(path string) *metrics.Recorder {
	if path == "" {
		return nil
	}
	return metrics.New()
}

// WriteMetrics exports rec to path. Failure is a warning, never fatal:
// the tool's own output has already been produced.
func WriteMetrics(rec *metrics.Recorder, path string, stderr io.Writer, quiet bool) {
	if rec == nil || path == "" {
		return
	}
	if err := rec.WriteTextfile(path); err != nil {
		cmdutil.Warnf(stderr, quiet, "%v", err)
	}
}
