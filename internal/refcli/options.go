package refcli

import (
	"flag"
	"fmt"
	"io"

	"annotkit/internal/cli"
	"annotkit/internal/clibase"
	"annotkit/internal/cliutil"
)

const Name = "annot-importref"

// Formats are the --output values annot-importref accepts.
var Formats = []string{cli.FormatText, cli.FormatJSON, cli.FormatJSONL}

type Options struct {
	clibase.Common

	// Manifests holds --list first, then positionals with globs expanded.
	// "-" reads standard input.
	Manifests   []string
	Dest        string
	VerifyFASTA bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := cli.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "validate and import reference genome fasta files", Formats, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s -l LIST [options] [more-lists...]\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -l, --list file             FILE listing genomes, '-' for stdin [required]")
		_, _ = fmt.Fprintln(out, "                              lines: /path/to.fasta  or  name||genus||species_strain||/path/to.fasta")
		_, _ = fmt.Fprintf(out, "      --verify-fasta          Require a '>' header in each record's file [%s]\n", def("verify-fasta"))

		_, _ = fmt.Fprintln(out, "\nDestination:")
		_, _ = fmt.Fprintln(out, "  -d, --dest root             Copy records under ROOT (dir, file:///dir, s3://bucket/prefix)")
		_, _ = fmt.Fprintln(out, "                              without --dest nothing is written")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for annot-importref.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, Name, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Check that every listed file exists:")
		_, _ = fmt.Fprintf(w, "  %s -l metahit_refs.txt\n", Name)
		_, _ = fmt.Fprintln(w, "\nImport into the reference tree, checking content:")
		_, _ = fmt.Fprintf(w, "  %s -l metahit_refs.txt --verify-fasta -d /data/refs\n", Name)
		_, _ = fmt.Fprintln(w, "\nImport into S3 (region/endpoint from ANNOTKIT_S3_*):")
		_, _ = fmt.Fprintf(w, "  %s -l metahit_refs.txt -d s3://pathogen-refs/metahit -o jsonl\n", Name)
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var list string
	clibase.Register(fs, &o.Common)

	fs.StringVar(&list, "list", "", "manifest file [required]")
	fs.StringVar(&list, "l", "", "alias of --list")
	fs.StringVar(&o.Dest, "dest", "", "destination root")
	fs.StringVar(&o.Dest, "d", "", "alias of --dest")
	fs.BoolVar(&o.VerifyFASTA, "verify-fasta", false, "check each record's file is FASTA [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if o.Examples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if o.Help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	if err := clibase.Validate(&o.Common, Formats...); err != nil {
		return o, err
	}
	if list == "" {
		return o, clibase.MissingRequired("--list")
	}
	extra, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return o, err
	}
	manifests, err := cliutil.ExpandPositionals(append([]string{list}, extra...))
	if err != nil {
		return o, err
	}
	o.Manifests = manifests
	return o, nil
}
