// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// ErrMissingRequired marks a command line that parsed but lacks a required flag.
// Apps print usage and exit 0 for it, unlike a malformed command line.
var ErrMissingRequired = errors.New("missing required flag")

// MissingRequired wraps ErrMissingRequired with the absent flags,
// e.g. "missing required flag: --fasta, --conf".
func MissingRequired(flags ...string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(flags, ", "))
}

// PrintExamples prints a quickstart header and body, followed by a
// one-line tip to discover full help.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
