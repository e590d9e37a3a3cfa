package genconf

import (
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1"
)

// Kind groups steps by the template they are rendered from.
type Kind string

const (
	KindGeneFinder Kind = "genefinder"
	KindMerge      Kind = "merge"
	KindFunction   Kind = "function"
)

// Step is one stage of the downstream pipeline.
type Step struct {
	// Key names the step in file names and, unless Index is set, the master config.
	Key string
	// Index, when set, replaces Key on the step's master config line.
	Index string
	// Module is the suffix after Pathogens::Annotate::.
	Module string
	Kind   Kind
}

// IndexKey is the label written before the step's path in the master config.
func (s Step) IndexKey() string {
	if s.Index != "" {
		return s.Index
	}
	return s.Key
}

// ModuleName is the fully qualified pipeline module.
func (s Step) ModuleName() string { return "Pathogens::Annotate::" + s.Module }

var (
	Glimmer           = Step{Key: "glimmer", Module: "Glimmer", Kind: KindGeneFinder}
	Prodigal          = Step{Key: "prodigal", Module: "Prodigal", Kind: KindGeneFinder}
	Rnammer           = Step{Key: "rnammer", Module: "Rnammer", Kind: KindGeneFinder}
	Trnascan          = Step{Key: "trnascan", Module: "Trnascan", Kind: KindGeneFinder}
	RepeatScout       = Step{Key: "repeatscout", Module: "RepeatScout", Kind: KindGeneFinder}
	AlienHunter       = Step{Key: "alienhunter", Module: "AlienHunter", Kind: KindGeneFinder}
	PredictionResults = Step{Key: "predictionresults", Module: "PredictionResults", Kind: KindMerge}
	GeneFunction      = Step{Key: "gfunc", Index: "GFUNC", Module: "GeneFunction", Kind: KindFunction}
)

// geneFinding is the declared order; emission order ties are broken by it.
var geneFinding = []Step{Glimmer, Prodigal, Rnammer, Trnascan, RepeatScout, AlienHunter, PredictionResults}

// Plan is the step DAG for one run: every gene finder feeds
// PredictionResults, which in turn feeds GeneFunction when enabled.
type Plan struct {
	g        graph.Graph[string, Step]
	declared map[string]int
}

func stepHash(s Step) string { return s.Key }

// NewPlan builds the step graph. withFunction adds the gene-function step.
func NewPlan(withFunction bool) (*Plan, error) {
	steps := append([]Step(nil), geneFinding...)
	if withFunction {
		steps = append(steps, GeneFunction)
	}

	p := &Plan{
		g:        graph.New(stepHash, graph.Directed(), graph.Acyclic(), graph.PreventCycles()),
		declared: make(map[string]int, len(steps)),
	}
	for i, s := range steps {
		fill, err := kindColor(s.Kind)
		if err != nil {
			return nil, err
		}
		if err := p.g.AddVertex(s,
			graph.VertexAttribute("style", "filled"),
			graph.VertexAttribute("fillcolor", fill),
			graph.VertexAttribute("tooltip", s.ModuleName()),
		); err != nil {
			return nil, errors.Wrapf(err, "unable to add step %s", s.Key)
		}
		p.declared[s.Key] = i
	}

	for _, s := range steps {
		if s.Kind != KindGeneFinder {
			continue
		}
		if err := p.link(s, PredictionResults); err != nil {
			return nil, err
		}
	}
	if withFunction {
		if err := p.link(PredictionResults, GeneFunction); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Plan) link(from, to Step) error {
	if err := p.g.AddEdge(from.Key, to.Key); err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", from.Key, to.Key)
	}
	return nil
}

// Order returns the steps in stable topological order.
func (p *Plan) Order() ([]Step, error) {
	keys, err := graph.StableTopologicalSort(p.g, func(a, b string) bool {
		return p.declared[a] < p.declared[b]
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to order steps")
	}
	out := make([]Step, 0, len(keys))
	for _, k := range keys {
		s, err := p.g.Vertex(k)
		if err != nil {
			return nil, errors.Wrapf(err, "step %s", k)
		}
		out = append(out, s)
	}
	return out, nil
}

// WriteDOT renders the plan as a Graphviz digraph.
func (p *Plan) WriteDOT(w io.Writer) error {
	if err := draw.DOT(p.g, w, draw.GraphAttribute("rankdir", "LR")); err != nil {
		return errors.Wrap(err, "unable to render step graph")
	}
	return nil
}

func kindColor(k Kind) (string, error) {
	var r, g, b uint8
	switch k {
	case KindGeneFinder:
		r, g, b = 173, 216, 230
	case KindMerge:
		r, g, b = 255, 218, 185
	default:
		r, g, b = 204, 235, 197
	}
	c, err := colors.RGB(r, g, b)
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}
	return c.ToHEX().String(), nil
}
