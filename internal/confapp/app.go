// internal/confapp/app.go
package confapp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"annotkit/internal/appcore"
	"annotkit/internal/cli"
	"annotkit/internal/cmdutil"
	"annotkit/internal/confcli"
	"annotkit/internal/genconf"
	"annotkit/internal/writers"
	"annotkit/pkg/api"
)

var tool = appcore.Tool[confcli.Options]{
	Name:          confcli.Name,
	NewFlagSet:    confcli.NewFlagSet,
	ParseArgs:     confcli.ParseArgs,
	PrintExamples: confcli.PrintExamples,
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
	return run(ctx, opts, outw, stderr)
}

func requestFrom(o confcli.Options) genconf.Request {
	return genconf.Request{
		Name:          o.SampleName,
		Fasta:         o.Fasta,
		Root:          o.Root,
		Conf:          o.Conf,
		RebuildMaster: o.RebuildMaster,
		GeneFunction:  o.GeneFunction,
	}
}

func run(ctx context.Context, opts confcli.Options, outw *bufio.Writer, stderr io.Writer) int {
	req := requestFrom(opts)
	rec := appcore.NewRecorder(opts.MetricsFile)

	var master string
	sink, err := writers.New[genconf.File, api.GeneratedConfigV1](opts.Output, outw, writers.Text[genconf.File]{
		Header: func(w io.Writer) error {
			_, err := fmt.Fprintln(w, "Generating config files...")
			return err
		},
		Line: func(w io.Writer, f genconf.File) error {
			_, err := fmt.Fprintf(w, "config file: %s\n", f.Path)
			return err
		},
		Footer: func(w io.Writer) error {
			verb := "appended"
			if req.RebuildMaster {
				verb = "rebuilt"
			}
			if _, err := fmt.Fprintf(w, "config file: %s %s\n", master, verb); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "generated for {%s, %s}\n", req.Name, req.Fasta)
			return err
		},
	}, func(f genconf.File) api.GeneratedConfigV1 { return toV1(req.Name, f) })
	if err != nil {
		return cmdutil.Flush(outw, stderr, cmdutil.ExitFor(err, stderr))
	}

	gen := &genconf.Generator{OnFile: func(f genconf.File) error {
		rec.FileWritten("step")
		return sink.Put(f)
	}}
	res, err := gen.Generate(ctx, req)
	if genconf.IsPrecondition(err) {
		// Not an error exit: the user is told what to fix and nothing was written.
		msgw := io.Writer(outw)
		if opts.Output != cli.FormatText {
			msgw = stderr
		}
		_, _ = fmt.Fprintln(msgw, err)
		return cmdutil.Flush(outw, stderr, cmdutil.ExitOK)
	}
	if err != nil {
		return cmdutil.Flush(outw, stderr, cmdutil.ExitFor(err, stderr))
	}
	master = res.Master
	rec.FileWritten("master")

	if opts.GraphFile != "" {
		if err := writeGraph(opts.GraphFile, req.GeneFunction); err != nil {
			return cmdutil.Flush(outw, stderr, cmdutil.ExitFor(err, stderr))
		}
		cmdutil.Infof(stderr, opts.Quiet, "step graph written to %s", opts.GraphFile)
	}

	if err := sink.Close(); err != nil {
		return cmdutil.Flush(outw, stderr, cmdutil.ExitFor(err, stderr))
	}
	appcore.WriteMetrics(rec, opts.MetricsFile, stderr, opts.Quiet)
	return cmdutil.Flush(outw, stderr, cmdutil.ExitOK)
}

func writeGraph(path string, withFunction bool) error {
	plan, err := genconf.NewPlan(withFunction)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create graph file")
	}
	if err := plan.WriteDOT(f); err != nil {
		_ = f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close graph file")
}

func toV1(sample string, f genconf.File) api.GeneratedConfigV1 {
	return api.GeneratedConfigV1{
		Sample: sample,
		Step:   f.Step.Key,
		Module: f.Step.ModuleName(),
		Path:   f.Path,
		Master: f.Master,
	}
}
