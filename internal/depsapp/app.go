// internal/depsapp/app.go
package depsapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"annotkit/internal/appcore"
	"annotkit/internal/cmdutil"
	"annotkit/internal/deps"
	"annotkit/internal/depscli"
	"annotkit/internal/writers"
	"annotkit/pkg/api"
)

var tool = appcore.Tool[depscli.Options]{
	Name:          depscli.Name,
	NewFlagSet:    depscli.NewFlagSet,
	ParseArgs:     depscli.ParseArgs,
	PrintExamples: depscli.PrintExamples,
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	opts, code, done := tool.Parse(argv, outw, stderr)
	if done {
		return code
	}
	return run(ctx, opts, deps.NewChecker(opts.Timeout), outw, stderr)
}

func loadTable(opts depscli.Options) (deps.Table, error) {
	t := deps.DefaultTable()
	if opts.ConfigFile != "" {
		var err error
		if t, err = deps.LoadFile(opts.ConfigFile); err != nil {
			return nil, err
		}
	}
	if opts.Strategy != "" {
		st, err := deps.ParseStrategy(opts.Strategy)
		if err != nil {
			return nil, err
		}
		t = t.WithStrategy(st)
	}
	return t, nil
}

func run(ctx context.Context, opts depscli.Options, checker *deps.Checker, outw *bufio.Writer, stderr io.Writer) int {
	table, err := loadTable(opts)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return cmdutil.ExitUsage
	}

	rec := appcore.NewRecorder(opts.MetricsFile)
	missing := 0
	sink, err := writers.New[deps.Status, api.DependencyStatusV1](opts.Output, outw, writers.Text[deps.Status]{
		Header: func(w io.Writer) error {
			_, err := fmt.Fprintln(w, "Checking dependencies...")
			return err
		},
		Line: func(w io.Writer, s deps.Status) error {
			var err error
			if s.Found {
				_, err = fmt.Fprintf(w, "found: %s\n", s.Location)
			} else {
				_, err = fmt.Fprintf(w, "not found: %s! Please check your setup environment.\n", s.Location)
			}
			return err
		},
		Footer: func(w io.Writer) error {
			var err error
			if missing > 0 {
				_, err = fmt.Fprintf(w, "%d dependencies not found\n", missing)
			} else {
				_, err = fmt.Fprintln(w, "all dependencies found")
			}
			return err
		},
	}, toV1)
	if err != nil {
		return cmdutil.Flush(outw, stderr, cmdutil.ExitFor(err, stderr))
	}

	rep, err := checker.Check(ctx, table, func(s deps.Status) error {
		rec.DependencyChecked(s.Found)
		if s.Err != nil {
			cmdutil.Warnf(stderr, opts.Quiet, "%s: %v", s.Name, s.Err)
		}
		return sink.Put(s)
	})
	missing = rep.Missing
	if err == nil {
		err = sink.Close()
	}
	if err != nil {
		return cmdutil.Flush(outw, stderr, cmdutil.ExitFor(err, stderr))
	}

	appcore.WriteMetrics(rec, opts.MetricsFile, stderr, opts.Quiet)
	code := cmdutil.ExitOK
	if missing > 0 {
		code = opts.MissingExitCode
	}
	return cmdutil.Flush(outw, stderr, code)
}

func toV1(s deps.Status) api.DependencyStatusV1 {
	v := api.DependencyStatusV1{
		Name:         s.Name,
		Location:     s.Location,
		Strategy:     string(s.Strategy),
		Found:        s.Found,
		ResolvedPath: s.ResolvedPath,
	}
	if s.Err != nil {
		v.Error = s.Err.Error()
	}
	return v
}
