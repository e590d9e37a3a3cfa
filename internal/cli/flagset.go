package cli

import "flag"

// NewFlagSet returns a clean FlagSet with ContinueOnError.
// Usage is left empty; tools install their own through clibase.UsageCommon.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}
