// internal/cli/options.go
package cli

import (
	"fmt"
	"strings"
	"time"
)

// Output formats understood by every tool. Not every tool accepts all three.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// StringSlice allows repeatable string flags.
type StringSlice []string

func (s *StringSlice) String() string     { return strings.Join(*s, ",") }
func (s *StringSlice) Set(v string) error { *s = append(*s, v); return nil }

// OneOf reports an error unless v is one of allowed. flagName is used in the message.
func OneOf(flagName, v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("invalid --%s %q (want %s)", flagName, v, strings.Join(allowed, " | "))
}

// NonNegativeDuration validates duration flags where 0 means "no limit".
func NonNegativeDuration(flagName string, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("--%s must be ≥ 0", flagName)
	}
	return nil
}
