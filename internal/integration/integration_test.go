// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"annotkit/internal/confapp"
	"annotkit/internal/depsapp"
	"annotkit/internal/refapp"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

// The three tools chained the way an annotation run is set up: check the
// toolchain, import the reference genome, then configure the sample.
func TestPipelineSetup(t *testing.T) {
	work := t.TempDir()
	bin := filepath.Join(work, "bin")
	if err := os.MkdirAll(bin, 0o755); err != nil {
		t.Fatal(err)
	}
	tool := write(t, filepath.Join(bin, "prodigal"), "#!/bin/sh\n")
	table := write(t, filepath.Join(work, "deps.yaml"), fmt.Sprintf(`dependencies:
  - name: prodigal_exec
    location: %s
  - name: rfam_cm
    location: %s
    strategy: path
`, tool, filepath.Join(work, "Rfam.cm")))

	var out, errB bytes.Buffer
	code := depsapp.Run([]string{"--config", table, "--strategy", "path"}, &out, &errB)
	if code != 0 {
		t.Fatalf("checkdeps exit %d, err=%s", code, errB.String())
	}
	if !strings.Contains(out.String(), "found: "+tool+"\n") || !strings.Contains(out.String(), "1 dependencies not found\n") {
		t.Fatalf("unexpected checkdeps output:\n%s", out.String())
	}

	src := write(t, filepath.Join(work, "K96243.fna"), ">chr1\nACGTACGTAC\n")
	refs := filepath.Join(work, "refs")
	list := write(t, filepath.Join(work, "list.txt"), "! reference genomes\nBpseudomallei||Burkholderia||pseudomallei_K96243||"+src+"\n")
	out.Reset()
	code = refapp.Run([]string{"-l", list, "-d", refs, "--verify-fasta"}, &out, &errB)
	if code != 0 {
		t.Fatalf("importref exit %d, err=%s", code, errB.String())
	}
	imported := filepath.Join(refs, "Burkholderia", "pseudomallei_K96243", "improved", "Burkholderia_pseudomallei_K96243.fasta")
	got, err := os.ReadFile(imported)
	if err != nil || string(got) != ">chr1\nACGTACGTAC\n" {
		t.Fatalf("imported copy: %q, %v", got, err)
	}

	root := filepath.Join(work, "run")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	code = confapp.Run([]string{"-n", "Bpseudomallei_K96243", "-f", imported, "-r", root, "-c", "pipeline.conf"}, &out, &errB)
	if code != 0 {
		t.Fatalf("genconf exit %d, err=%s", code, errB.String())
	}
	master, err := os.ReadFile(filepath.Join(root, "pipeline.conf"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(master), "\n"); n != 7 {
		t.Fatalf("want 7 master lines, got %d:\n%s", n, master)
	}
	step, err := os.ReadFile(filepath.Join(root, "conf", "Bpseudomallei_K96243_glimmer.conf"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(step), "fasta => '"+imported+"',") {
		t.Fatalf("step config does not reference imported fasta:\n%s", step)
	}
}

func TestCancelledRunsExit130(t *testing.T) {
	work := t.TempDir()
	fa := write(t, filepath.Join(work, "a.fa"), ">a\nAC\n")
	list := write(t, filepath.Join(work, "list.txt"), fa+"\n")
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cases := map[string]struct {
		run  func(context.Context, []string, *bytes.Buffer, *bytes.Buffer) int
		argv []string
	}{
		"checkdeps": {
			run:  func(ctx context.Context, a []string, o, e *bytes.Buffer) int { return depsapp.RunContext(ctx, a, o, e) },
			argv: []string{"--strategy", "path"},
		},
		"importref": {
			run:  func(ctx context.Context, a []string, o, e *bytes.Buffer) int { return refapp.RunContext(ctx, a, o, e) },
			argv: []string{"-l", list},
		},
		"genconf": {
			run:  func(ctx context.Context, a []string, o, e *bytes.Buffer) int { return confapp.RunContext(ctx, a, o, e) },
			argv: []string{"-n", "S", "-f", fa, "-r", root, "-c", "c.conf"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var out, errB bytes.Buffer
			if code := tc.run(ctx, tc.argv, &out, &errB); code != 130 {
				t.Fatalf("expected exit 130 on cancel, got %d (stderr %q)", code, errB.String())
			}
		})
	}
}
