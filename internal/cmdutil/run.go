package cmdutil

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"annotkit/internal/writers"
)

// Exit codes shared by every tool.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitIO          = 3
	ExitInterrupted = 130
)

// Flush flushes outw and folds the outcome into code.
// A broken pipe means the reader went away early and maps to 0.
func Flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return code
}

// ExitFor maps a run error to an exit code: nil → ok, cancellation → 130,
// broken pipe → 0, anything else is reported as an I/O failure.
func ExitFor(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitInterrupted
	case writers.IsBrokenPipe(err):
		return ExitOK
	default:
		Errorf(stderr, "%v", err)
		return ExitIO
	}
}
