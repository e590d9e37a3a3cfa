package confcli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"annotkit/internal/cli"
	"annotkit/internal/clibase"
	"annotkit/internal/cliutil"
)

const Name = "annot-genconf"

// Formats are the --output values annot-genconf accepts.
var Formats = []string{cli.FormatText, cli.FormatJSON}

type Options struct {
	clibase.Common

	SampleName string
	Fasta      string
	Root       string
	Conf       string

	RebuildMaster bool
	GeneFunction  bool
	GraphFile     string
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := cli.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "generate per-step pipeline config files for one sample", Formats, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s -n NAME -f FILE -r ROOT -c CONF [options]\n", name)

		_, _ = fmt.Fprintln(out, "\nSample:")
		_, _ = fmt.Fprintln(out, "  -n, --name string           Unique common NAME (e.g. Bpseudomallei_K96243) [required]")
		_, _ = fmt.Fprintln(out, "  -f, --fasta file            Path to the fasta FILE [required]")
		_, _ = fmt.Fprintln(out, "  -r, --root dir              ROOT directory the pipeline writes to [required]")
		_, _ = fmt.Fprintln(out, "  -c, --conf string           Master CONFiguration file name under ROOT [required]")

		_, _ = fmt.Fprintln(out, "\nGeneration:")
		_, _ = fmt.Fprintf(out, "      --rebuild-master        Truncate the master config instead of appending [%s]\n", def("rebuild-master"))
		_, _ = fmt.Fprintf(out, "      --gene-function         Also write the gene-function step config [%s]\n", def("gene-function"))
		_, _ = fmt.Fprintln(out, "      --graph file            Write the step graph as Graphviz DOT")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for annot-genconf.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, Name, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Configure one sample:")
		_, _ = fmt.Fprintf(w, "  %s \\\n", Name)
		_, _ = fmt.Fprintln(w, "    -n Bpseudomallei_K96243 \\")
		_, _ = fmt.Fprintln(w, "    -f /data/test_data/Burkholderia_pseudomallei_K96243.fna \\")
		_, _ = fmt.Fprintln(w, "    -r /scratch/ann_pipeline \\")
		_, _ = fmt.Fprintln(w, "    -c annotation_pipeline.conf")
		_, _ = fmt.Fprintln(w, "\nRegenerate from scratch and draw the steps:")
		_, _ = fmt.Fprintf(w, "  %s -n S1 -f s1.fna -r /scratch/run -c run.conf --rebuild-master --graph steps.dot\n", Name)
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common)

	fs.StringVar(&o.SampleName, "name", "", "unique common name [required]")
	fs.StringVar(&o.SampleName, "n", "", "alias of --name")
	fs.StringVar(&o.Fasta, "fasta", "", "path to the fasta file [required]")
	fs.StringVar(&o.Fasta, "f", "", "alias of --fasta")
	fs.StringVar(&o.Root, "root", "", "root output directory [required]")
	fs.StringVar(&o.Root, "r", "", "alias of --root")
	fs.StringVar(&o.Conf, "conf", "", "master config file name [required]")
	fs.StringVar(&o.Conf, "c", "", "alias of --conf")
	fs.BoolVar(&o.RebuildMaster, "rebuild-master", false, "truncate the master config [false]")
	fs.BoolVar(&o.GeneFunction, "gene-function", false, "also write the gene-function config [false]")
	fs.StringVar(&o.GraphFile, "graph", "", "write the step graph as DOT")

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

	if len(posArgs) > 0 {
		return o, fmt.Errorf("unexpected argument %q", posArgs[0])
	}
	if err := clibase.Validate(&o.Common, Formats...); err != nil {
		return o, err
	}
	var missing []string
	for _, f := range []struct{ name, v string }{
		{"--name", o.SampleName}, {"--fasta", o.Fasta}, {"--root", o.Root}, {"--conf", o.Conf},
	} {
		if strings.TrimSpace(f.v) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return o, clibase.MissingRequired(missing...)
	}
	return o, nil
}
