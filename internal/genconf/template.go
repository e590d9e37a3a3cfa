package genconf

import (
	"io"
	"text/template"

	"github.com/pkg/errors"
)

// Values are inserted verbatim; the pipeline reads these files as Perl
// hash literals and does its own path handling.
const geneFindingTemplate = `
root    => '{{.Root}}/{{.Name}}',
module  => '{{.Module}}',
prefix  => '_',
log	=> '{{.Root}}/log/{{.Name}}.log',

data => {
    fasta => '{{.Fasta}}',
    common_name => '{{.Name}}',
},

`

const geneFunctionTemplate = `
root    => '{{.Root}}/{{.Name}}',
module  => '{{.Module}}',
prefix  => '_',
log	=> '{{.Root}}/log/{{.Name}}.log',

data => {
    embl => '{{.Root}}/{{.Name}}/GFIND/sequence.embl',
    common_name => '{{.Name}}',
},

`

var templates = template.Must(template.New(string(KindGeneFinder)).Parse(geneFindingTemplate))

func init() {
	template.Must(templates.New(string(KindMerge)).Parse(geneFindingTemplate))
	template.Must(templates.New(string(KindFunction)).Parse(geneFunctionTemplate))
}

type templateData struct {
	Root   string
	Name   string
	Fasta  string
	Module string
}

// Render writes the config file body for step s.
func Render(w io.Writer, s Step, req Request) error {
	t := templates.Lookup(string(s.Kind))
	if t == nil {
		return errors.Errorf("no template for step kind %q", s.Kind)
	}
	err := t.Execute(w, templateData{
		Root:   req.Root,
		Name:   req.Name,
		Fasta:  req.Fasta,
		Module: s.ModuleName(),
	})
	return errors.Wrapf(err, "render %s", s.Key)
}
