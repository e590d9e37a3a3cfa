// internal/cli/options_test.go
package cli

import (
	"flag"
	"strings"
	"testing"
	"time"
)

func TestStringSliceRepeatable(t *testing.T) {
	fs := NewFlagSet("test")
	var s StringSlice
	fs.Var(&s, "x", "")
	if err := fs.Parse([]string{"-x", "a", "-x", "b"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(s) != 2 || s.String() != "a,b" {
		t.Fatalf("want [a b], got %v", s)
	}
}

func TestNewFlagSetContinuesOnError(t *testing.T) {
	fs := NewFlagSet("test")
	if fs.ErrorHandling() != flag.ContinueOnError {
		t.Fatalf("want ContinueOnError")
	}
	fs.SetOutput(&strings.Builder{})
	if err := fs.Parse([]string{"--nope"}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestOneOf(t *testing.T) {
	if err := OneOf("output", "json", FormatText, FormatJSON); err != nil {
		t.Fatalf("json should be accepted: %v", err)
	}
	err := OneOf("output", "fasta", FormatText, FormatJSON)
	if err == nil || !strings.Contains(err.Error(), "--output") {
		t.Fatalf("want --output error, got %v", err)
	}
}

func TestNonNegativeDuration(t *testing.T) {
	if err := NonNegativeDuration("timeout", 0); err != nil {
		t.Fatalf("0 should be allowed: %v", err)
	}
	if err := NonNegativeDuration("timeout", -time.Second); err == nil {
		t.Fatalf("expected error for negative duration")
	}
}
