// internal/refapp/app.go
package refapp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"annotkit/internal/appcore"
	"annotkit/internal/blob"
	"annotkit/internal/cmdutil"
	"annotkit/internal/refcli"
	"annotkit/internal/refimport"
	"annotkit/internal/writers"
	"annotkit/pkg/api"
)

var tool = appcore.Tool[refcli.Options]{
	Name:          refcli.Name,
	NewFlagSet:    refcli.NewFlagSet,
	ParseArgs:     refcli.ParseArgs,
	PrintExamples: refcli.PrintExamples,
}

// stdin backs the "-" manifest.
var stdin io.Reader = os.Stdin

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	opts, code, done := tool.Parse(argv, outw, stderr)
	if done {
		return code
	}

	var store blob.Store
	if opts.Dest != "" {
		s, err := blob.Open(ctx, opts.Dest)
		if errors.Is(err, blob.ErrUnsupported) {
			cmdutil.Errorf(stderr, "%v", err)
			return cmdutil.ExitUsage
		}
		if err != nil {
			return cmdutil.ExitFor(err, stderr)
		}
		store = s
	}
	return run(ctx, opts, store, outw, stderr)
}

// labels pads every status to the same width so paths line up.
var labels = map[refimport.Outcome]string{
	refimport.Found:    "FOUND    ",
	refimport.NotFound: "NOT FOUND",
	refimport.NotAFile: "NO FILE  ",
	refimport.Invalid:  "INVALID  ",
	refimport.Copied:   "COPIED   ",
}

func writeLine(w io.Writer, r refimport.Result) error {
	var err error
	switch r.Outcome {
	case refimport.Malformed:
		_, err = fmt.Fprintf(w, "MALFORMED line %d: %s\n", r.Entry.Line, r.Entry.Text)
	case refimport.Copied:
		_, err = fmt.Fprintf(w, "%s %s -> %s\n", labels[r.Outcome], r.Source(), r.Destination)
	default:
		_, err = fmt.Fprintf(w, "%s %s\n", labels[r.Outcome], r.Source())
	}
	return err
}

func run(ctx context.Context, opts refcli.Options, store blob.Store, outw *bufio.Writer, stderr io.Writer) int {
	rec := appcore.NewRecorder(opts.MetricsFile)
	var total refimport.Summary

	sink, err := writers.New[refimport.Result, api.RecordStatusV1](opts.Output, outw, writers.Text[refimport.Result]{
		Header: func(w io.Writer) error {
			_, err := fmt.Fprintln(w, "Checking reference fasta files...")
			return err
		},
		Line: writeLine,
		Footer: func(w io.Writer) error {
			_, err := fmt.Fprintln(w, total.String())
			return err
		},
	}, toV1)
	if err != nil {
		return cmdutil.Flush(outw, stderr, cmdutil.ExitFor(err, stderr))
	}

	im := &refimport.Importer{Store: store, VerifyFASTA: opts.VerifyFASTA}
	emit := func(r refimport.Result) error {
		rec.RecordOutcome(string(r.Outcome))
		switch r.Outcome {
		case refimport.Copied:
			rec.BytesCopied(r.Bytes)
		case refimport.Malformed:
			cmdutil.Warnf(stderr, opts.Quiet, "%s:%d: malformed record (want name||genus||species_strain||path)", r.Manifest, r.Entry.Line)
		}
		return sink.Put(r)
	}

	for _, m := range opts.Manifests {
		sum, err := importOne(ctx, im, m, emit)
		total.Merge(sum)
		if err != nil {
			return cmdutil.Flush(outw, stderr, cmdutil.ExitFor(err, stderr))
		}
	}

	if err := sink.Close(); err != nil {
		return cmdutil.Flush(outw, stderr, cmdutil.ExitFor(err, stderr))
	}
	appcore.WriteMetrics(rec, opts.MetricsFile, stderr, opts.Quiet)
	return cmdutil.Flush(outw, stderr, cmdutil.ExitOK)
}

func importOne(ctx context.Context, im *refimport.Importer, name string, emit func(refimport.Result) error) (refimport.Summary, error) {
	if name == "-" {
		return im.Run(ctx, "-", stdin, emit)
	}
	f, err := os.Open(name)
	if err != nil {
		return refimport.Summary{}, errors.Wrap(err, "open manifest")
	}
	defer f.Close()
	return im.Run(ctx, name, f, emit)
}

func toV1(r refimport.Result) api.RecordStatusV1 {
	e := r.Entry
	return api.RecordStatusV1{
		Manifest:      r.Manifest,
		Line:          e.Line,
		Kind:          e.Kind.String(),
		Outcome:       string(r.Outcome),
		Source:        e.Path,
		CommonName:    e.CommonName,
		Genus:         e.Genus,
		SpeciesStrain: e.SpeciesStrain,
		Destination:   r.Destination,
		Bytes:         r.Bytes,
		SHA256:        r.SHA256,
		Detail:        r.Detail,
	}
}
