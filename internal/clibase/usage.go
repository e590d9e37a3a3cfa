// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"annotkit/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// formats is the list of accepted --output values for this tool;
// extra prints tool-specific sections (usage line, tool flags).
func UsageCommon(fs *flag.FlagSet, name, summary string, formats []string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – %s\n\n", name, summary)
		fmt.Fprintln(out, "Part of annotkit, the genome annotation pipeline toolkit.")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		// Shared blocks
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: %s [%s]\n", strings.Join(formats, " | "), def("output"))
		fmt.Fprintln(out, "      --metrics-file file     Write Prometheus textfile metrics")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
