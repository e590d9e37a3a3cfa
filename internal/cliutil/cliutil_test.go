package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var s string
	fs.BoolVar(&b, "bool", false, "")
	fs.StringVar(&s, "l", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"pos0", "--bool", "-l", "list.txt", "pos1", "--", "pos2"})
	if len(flagArgs) != 3 || flagArgs[2] != "list.txt" {
		t.Fatalf("unexpected flags: %v", flagArgs)
	}
	if len(posArgs) != 3 || posArgs[0] != "pos0" || posArgs[1] != "pos1" || posArgs[2] != "pos2" {
		t.Fatalf("unexpected positionals: %v", posArgs)
	}
}

func TestSplitKeepsStdinDash(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	_, pos := SplitFlagsAndPositionals(fs, []string{"-"})
	if len(pos) != 1 || pos[0] != "-" {
		t.Fatalf("want [-], got %v", pos)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.lst")
	b := filepath.Join(dir, "b.lst")
	_ = os.WriteFile(a, []byte("/x\n"), 0o644)
	_ = os.WriteFile(b, []byte("/y\n"), 0o644)
	got, err := ExpandPositionals([]string{a, filepath.Join(dir, "*.lst")})
	if err != nil || len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
}

func TestExpandPositionalsNoMatch(t *testing.T) {
	if _, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.none")}); err == nil {
		t.Fatal("expected error for unmatched glob")
	}
}
