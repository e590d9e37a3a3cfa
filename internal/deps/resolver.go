package deps

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Resolution is the outcome of looking for one location.
type Resolution struct {
	Found bool
	Path  string // resolved path when known
}

// Resolver looks up a dependency location. A missing dependency is a
// Resolution with Found=false and a nil error; errors mean the lookup
// itself could not be carried out.
type Resolver interface {
	Resolve(ctx context.Context, location string) (Resolution, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(ctx context.Context, location string) (Resolution, error)

func (f ResolverFunc) Resolve(ctx context.Context, location string) (Resolution, error) {
	return f(ctx, location)
}

// LookPath resolves bare names against $PATH with exec.LookPath.
type LookPath struct{}

func (LookPath) Resolve(ctx context.Context, location string) (Resolution, error) {
	if err := ctx.Err(); err != nil {
		return Resolution{}, err
	}
	p, err := exec.LookPath(location)
	switch {
	case err == nil:
		return Resolution{Found: true, Path: p}, nil
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, exec.ErrDot), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return Resolution{}, nil
	default:
		return Resolution{}, errors.Wrapf(err, "lookpath %s", location)
	}
}

// Shell asks the host shell to resolve the name. Exit status 0 means found.
type Shell struct {
	// Path of the POSIX shell to run; "sh" when empty.
	Path string
}

func (s Shell) Resolve(ctx context.Context, location string) (Resolution, error) {
	sh := s.Path
	if sh == "" {
		sh = "sh"
	}
	// The name is passed as $1, never spliced into the script.
	cmd := exec.CommandContext(ctx, sh, "-c", `command -v "$1"`, "annotkit", location)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	if err == nil {
		return Resolution{Found: true, Path: strings.TrimSpace(stdout.String())}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Resolution{}, errors.Wrapf(ctxErr, "shell lookup %s", location)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Resolution{}, nil
	}
	return Resolution{}, errors.Wrapf(err, "shell lookup %s", location)
}

// PathCheck checks that the location exists on disk.
type PathCheck struct{}

func (PathCheck) Resolve(ctx context.Context, location string) (Resolution, error) {
	if err := ctx.Err(); err != nil {
		return Resolution{}, err
	}
	_, err := os.Stat(location)
	switch {
	case err == nil:
		return Resolution{Found: true, Path: location}, nil
	case errors.Is(err, fs.ErrNotExist):
		return Resolution{}, nil
	default:
		return Resolution{}, errors.Wrapf(err, "stat %s", location)
	}
}

// Auto dispatches absolute locations to Abs and bare names to Bare.
type Auto struct {
	Abs  Resolver
	Bare Resolver
}

func (a Auto) Resolve(ctx context.Context, location string) (Resolution, error) {
	if filepath.IsAbs(location) {
		return a.Abs.Resolve(ctx, location)
	}
	return a.Bare.Resolve(ctx, location)
}

// DefaultResolvers maps every Strategy to its standard Resolver.
func DefaultResolvers() map[Strategy]Resolver {
	return map[Strategy]Resolver{
		StrategyAuto:     Auto{Abs: PathCheck{}, Bare: LookPath{}},
		StrategyLookPath: LookPath{},
		StrategyShell:    Shell{},
		StrategyPath:     PathCheck{},
	}
}
