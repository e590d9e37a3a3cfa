package appshell

import (
	"bytes"
	"context"
	"io"
	"testing"
)

func TestExecDefaultsToHelp(t *testing.T) {
	var got []string
	run := func(_ context.Context, argv []string, _, _ io.Writer) int {
		got = argv
		return 0
	}
	var out, errB bytes.Buffer
	if code := Exec(run, nil, &out, &errB); code != 0 {
		t.Fatalf("want exit 0, got %d", code)
	}
	if len(got) != 1 || got[0] != "-h" {
		t.Fatalf("want [-h], got %v", got)
	}
}

func TestExecPassesExitCode(t *testing.T) {
	run := func(context.Context, []string, io.Writer, io.Writer) int { return 3 }
	if code := Exec(run, []string{"-x"}, io.Discard, io.Discard); code != 3 {
		t.Fatalf("want 3, got %d", code)
	}
}
