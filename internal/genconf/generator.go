package genconf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrRootMissing  = errors.New("path does not exist! Please create root path first.")
	ErrRootNotDir   = errors.New("is not a directory! Please create root path first.")
	ErrFastaMissing = errors.New("does not exist! Please check the path to the fasta file.")
)

// Request describes one sample to generate configs for.
type Request struct {
	Name  string // unique common name, e.g. Bpseudomallei_K96243
	Fasta string
	Root  string
	Conf  string // master config file name, relative to Root

	RebuildMaster bool
	GeneFunction  bool
}

// MasterPath is where the master config lives.
func (r Request) MasterPath() string { return filepath.Join(r.Root, r.Conf) }

// StepPath is where the config file for s is written.
func (r Request) StepPath(s Step) string {
	return filepath.Join(r.Root, "conf", r.Name+"_"+s.Key+".conf")
}

// Validate reports missing required fields.
func (r Request) Validate() error {
	var missing []string
	for _, f := range []struct{ flag, v string }{
		{"--name", r.Name}, {"--fasta", r.Fasta}, {"--root", r.Root}, {"--conf", r.Conf},
	} {
		if strings.TrimSpace(f.v) == "" {
			missing = append(missing, f.flag)
		}
	}
	if len(missing) > 0 {
		return errors.Errorf("missing required %s", strings.Join(missing, ", "))
	}
	return nil
}

// CheckPreconditions verifies Root and Fasta before anything is written.
// The returned error's text is the user-facing message, e.g.
// "/data path does not exist! Please create root path first.".
func CheckPreconditions(r Request) error {
	fi, err := os.Stat(r.Root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return pathError(r.Root, ErrRootMissing)
	case err != nil:
		return errors.Wrapf(err, "stat root %s", r.Root)
	case !fi.IsDir():
		return pathError(r.Root, ErrRootNotDir)
	}
	if _, err := os.Stat(r.Fasta); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return pathError(r.Fasta, ErrFastaMissing)
		}
		return errors.Wrapf(err, "stat fasta %s", r.Fasta)
	}
	return nil
}

// pathError puts path in front of sentinel. errors.Wrap would put it
// after a colon, which changes the message users see.
func pathError(path string, sentinel error) error {
	return fmt.Errorf("%s %w", path, sentinel)
}

// IsPrecondition reports whether err came from CheckPreconditions' checks
// rather than an I/O failure.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrRootMissing) || errors.Is(err, ErrRootNotDir) || errors.Is(err, ErrFastaMissing)
}

// File is one generated step config.
type File struct {
	Step   Step
	Path   string // absolute
	Master string // absolute master config path it was indexed in
}

// Result summarizes a run.
type Result struct {
	Files  []File
	Master string
}

// Generator writes step configs and the master index.
type Generator struct {
	// OnFile is called after each step file is written and indexed.
	OnFile func(File) error
}

// Generate checks preconditions, creates root/log and root/conf, then
// writes every step file in plan order, appending one line per step to
// the master config. There is no rollback: a failure part way through
// leaves what was already written.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	var res Result
	if err := req.Validate(); err != nil {
		return res, err
	}
	if err := CheckPreconditions(req); err != nil {
		return res, err
	}
	plan, err := NewPlan(req.GeneFunction)
	if err != nil {
		return res, err
	}
	steps, err := plan.Order()
	if err != nil {
		return res, err
	}

	for _, dir := range []string{"log", "conf"} {
		if err := os.MkdirAll(filepath.Join(req.Root, dir), 0o755); err != nil {
			return res, errors.Wrapf(err, "create %s directory", dir)
		}
	}

	master, err := filepath.Abs(req.MasterPath())
	if err != nil {
		return res, errors.Wrap(err, "resolve master config path")
	}
	res.Master = master

	flags := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if req.RebuildMaster {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	mf, err := os.OpenFile(master, flags, 0o644)
	if err != nil {
		return res, errors.Wrap(err, "open master config")
	}
	defer mf.Close()

	var buf bytes.Buffer
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		f, err := writeStep(&buf, req, s, master)
		if err != nil {
			return res, err
		}
		if err := indexStep(mf, f); err != nil {
			return res, err
		}
		res.Files = append(res.Files, f)
		if g.OnFile != nil {
			if err := g.OnFile(f); err != nil {
				return res, err
			}
		}
	}
	return res, errors.Wrap(mf.Close(), "close master config")
}

func writeStep(buf *bytes.Buffer, req Request, s Step, master string) (File, error) {
	path, err := filepath.Abs(req.StepPath(s))
	if err != nil {
		return File{}, errors.Wrapf(err, "resolve %s config path", s.Key)
	}
	buf.Reset()
	if err := Render(buf, s, req); err != nil {
		return File{}, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return File{}, errors.Wrapf(err, "write %s config", s.Key)
	}
	return File{Step: s, Path: path, Master: master}, nil
}

func indexStep(w io.Writer, f File) error {
	_, err := fmt.Fprintf(w, "%s\t%s\n", f.Step.IndexKey(), f.Path)
	return errors.Wrapf(err, "index %s in master config", f.Step.Key)
}
