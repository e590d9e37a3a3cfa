// internal/clibase/common.go
package clibase

import (
	"flag"

	"annotkit/internal/cli"
)

// Common holds CLI fields shared by annot-checkdeps, annot-genconf and annot-importref.
type Common struct {
	// Output
	Output      string // text|json|jsonl (subset per tool)
	MetricsFile string

	// Misc
	Quiet    bool
	Version  bool
	Help     bool
	Examples bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	// Output
	fs.StringVar(&c.Output, "output", cli.FormatText, "output format [text]")
	fs.StringVar(&c.Output, "o", cli.FormatText, "alias of --output")
	fs.StringVar(&c.MetricsFile, "metrics-file", "", "write Prometheus textfile metrics to FILE")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Help, "h", false, "show this help [false]")
	fs.BoolVar(&c.Help, "help", false, "show this help [false]")
	fs.BoolVar(&c.Examples, "examples", false, "show quickstart examples and exit [false]")
}

// Validate applies shared CLI invariants; formats lists the outputs the tool supports.
func Validate(c *Common, formats ...string) error {
	return cli.OneOf("output", c.Output, formats...)
}

// Shared returns the embedded Common; it lets generic app code reach the
// shared fields of any tool's Options.
func (c Common) Shared() Common { return c }
