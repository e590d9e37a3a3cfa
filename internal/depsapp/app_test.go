package depsapp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"annotkit/internal/deps"
	"annotkit/internal/depscli"
	"annotkit/pkg/api"
)

func fakeChecker(present ...string) *deps.Checker {
	set := map[string]bool{}
	for _, p := range present {
		set[p] = true
	}
	r := deps.ResolverFunc(func(_ context.Context, loc string) (deps.Resolution, error) {
		return deps.Resolution{Found: set[loc], Path: "/opt/bin/" + loc}, nil
	})
	return &deps.Checker{Resolvers: map[deps.Strategy]deps.Resolver{
		deps.StrategyAuto: r, deps.StrategyLookPath: r, deps.StrategyShell: r, deps.StrategyPath: r,
	}}
}

func runWith(t *testing.T, c *deps.Checker, args ...string) (string, string, int) {
	t.Helper()
	opts, err := depscli.ParseArgs(depscli.NewFlagSet(depscli.Name), args)
	require.NoError(t, err)
	var out, errB bytes.Buffer
	code := run(context.Background(), opts, c, bufio.NewWriter(&out), &errB)
	return out.String(), errB.String(), code
}

func writeTable(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "deps.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`dependencies:
  - name: prodigal_exec
    location: prodigal
  - name: rnammer_exec
    location: rnammer
`), 0o644))
	return p
}

func TestTextOutput(t *testing.T) {
	out, _, code := runWith(t, fakeChecker("prodigal"), "--config", writeTable(t))
	assert.Equal(t, 0, code)
	assert.Equal(t, "Checking dependencies...\n"+
		"found: prodigal\n"+
		"not found: rnammer! Please check your setup environment.\n"+
		"1 dependencies not found\n", out)
}

func TestAllFound(t *testing.T) {
	out, _, code := runWith(t, fakeChecker("prodigal", "rnammer"), "-c", writeTable(t))
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasSuffix(out, "all dependencies found\n"))
}

func TestDefaultTableEveryEntryMissing(t *testing.T) {
	out, _, code := runWith(t, fakeChecker(), "--missing-exit-code", "1")
	assert.Equal(t, 1, code)
	assert.Equal(t, len(deps.DefaultTable()), strings.Count(out, "not found: "))
	assert.Contains(t, out, "16 dependencies not found\n")
}

func TestJSONOutput(t *testing.T) {
	out, _, code := runWith(t, fakeChecker("prodigal"), "-c", writeTable(t), "--strategy", "shell", "-o", "json")
	require.Equal(t, 0, code)
	var got []api.DependencyStatusV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, api.DependencyStatusV1{
		Name: "prodigal_exec", Location: "prodigal", Strategy: "shell", Found: true, ResolvedPath: "/opt/bin/prodigal",
	}, got[0])
	assert.False(t, got[1].Found)
}

func TestJSONLOutput(t *testing.T) {
	out, _, _ := runWith(t, fakeChecker(), "-c", writeTable(t), "-o", "jsonl")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)
}

func TestMetricsFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "deps.prom")
	_, _, code := runWith(t, fakeChecker("prodigal"), "-c", writeTable(t), "--metrics-file", p)
	require.Equal(t, 0, code)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `annotkit_deps_checked_total{status="found"} 1`)
	assert.Contains(t, string(b), `annotkit_deps_checked_total{status="missing"} 1`)
}

func TestBadConfig(t *testing.T) {
	_, errS, code := runWith(t, fakeChecker(), "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 2, code)
	assert.Contains(t, errS, "error: ")
}

func TestRunContextUsageAndErrors(t *testing.T) {
	var out, errB bytes.Buffer
	assert.Equal(t, 0, RunContext(context.Background(), []string{"-h"}, &out, &errB))
	assert.Contains(t, out.String(), "annot-checkdeps – ")
	assert.Contains(t, out.String(), "--strategy")

	out.Reset()
	assert.Equal(t, 2, RunContext(context.Background(), []string{"--strategy", "which"}, &out, &errB))
	assert.Contains(t, errB.String(), "invalid --strategy")

	out.Reset()
	assert.Equal(t, 0, RunContext(context.Background(), []string{"--version"}, &out, &errB))
	assert.Contains(t, out.String(), "annot-checkdeps version ")

	out.Reset()
	assert.Equal(t, 0, RunContext(context.Background(), []string{"--examples"}, &out, &errB))
	assert.Contains(t, out.String(), "quickstart")
}
