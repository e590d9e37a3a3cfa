package deps

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Status is the result of checking one dependency.
type Status struct {
	Dependency
	Found        bool
	ResolvedPath string
	// Err is set when the lookup itself failed; the dependency then
	// counts as not found.
	Err error
}

// Report aggregates a full check.
type Report struct {
	Checked int
	Missing int
}

// Checker runs a Table through per-strategy resolvers.
type Checker struct {
	Resolvers map[Strategy]Resolver
	// Timeout bounds each single lookup; zero means no limit.
	Timeout time.Duration
}

// NewChecker returns a Checker using DefaultResolvers.
func NewChecker(timeout time.Duration) *Checker {
	return &Checker{Resolvers: DefaultResolvers(), Timeout: timeout}
}

// Check resolves every entry of t in order and hands each Status to emit.
// Missing dependencies are findings, not errors: the returned error is
// non-nil only for cancellation, an unresolvable strategy, or emit failing.
func (c *Checker) Check(ctx context.Context, t Table, emit func(Status) error) (Report, error) {
	var rep Report
	for _, d := range t {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		r, ok := c.Resolvers[d.Strategy]
		if !ok {
			return rep, errors.Wrapf(ErrUnknownStrategy, "dependency %s: %q", d.Name, d.Strategy)
		}

		st := Status{Dependency: d}
		res, err := c.resolve(ctx, r, d.Location)
		if err != nil && ctx.Err() != nil {
			return rep, ctx.Err()
		}
		st.Found, st.ResolvedPath, st.Err = res.Found, res.Path, err

		rep.Checked++
		if !st.Found {
			rep.Missing++
		}
		if err := emit(st); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

func (c *Checker) resolve(ctx context.Context, r Resolver, location string) (Resolution, error) {
	if c.Timeout <= 0 {
		return r.Resolve(ctx, location)
	}
	rctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()
	return r.Resolve(rctx, location)
}
