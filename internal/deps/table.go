package deps

import (
	"strings"

	"github.com/pkg/errors"
)

// Strategy selects how a dependency location is resolved.
type Strategy string

const (
	// StrategyAuto uses StrategyPath for absolute locations and
	// StrategyLookPath for bare executable names.
	StrategyAuto Strategy = "auto"
	// StrategyLookPath searches $PATH in-process.
	StrategyLookPath Strategy = "lookpath"
	// StrategyShell asks the host shell (`command -v`) and trusts its exit status.
	StrategyShell Strategy = "shell"
	// StrategyPath checks that the location exists on the filesystem.
	StrategyPath Strategy = "path"
)

// ErrUnknownStrategy is returned for a strategy name outside the set above.
var ErrUnknownStrategy = errors.New("unknown resolution strategy")

// Strategies lists every accepted strategy name, in help-text order.
func Strategies() []Strategy {
	return []Strategy{StrategyAuto, StrategyLookPath, StrategyShell, StrategyPath}
}

// ParseStrategy maps a name onto a Strategy. The empty string is StrategyAuto.
func ParseStrategy(s string) (Strategy, error) {
	if s == "" {
		return StrategyAuto, nil
	}
	for _, st := range Strategies() {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownStrategy, "%q", s)
}

// Dependency is one thing the pipeline needs: an executable name resolved
// via $PATH or an absolute path to a file.
type Dependency struct {
	Name     string
	Location string
	Strategy Strategy
}

// Table is an ordered list of dependencies; checks run in this order.
type Table []Dependency

// DefaultTable is the gene-finding toolchain the pipeline steps call.
func DefaultTable() Table {
	return Table{
		{Name: "glimmer3_exec", Location: "g3-iterated.csh"},
		{Name: "glimmer2tab_exec", Location: "glimmer2tab.py"},
		{Name: "prodigal_exec", Location: "prodigal"},
		{Name: "prodigal2tab_exec", Location: "prodigal2tab.py"},
		{Name: "trnascan_exec", Location: "tRNAscan-SE"},
		{Name: "trnascan2tab_exec", Location: "trnascan2tab.py"},
		{Name: "rnammer_exec", Location: "rnammer"},
		{Name: "rnammer2tab_exec", Location: "rnammer2tab.py"},
		{Name: "lmertable_exec", Location: "build_lmer_table"},
		{Name: "repeatscout_exec", Location: "RepeatScout"},
		{Name: "repeatmasker_exec", Location: "RepeatMasker"},
		{Name: "filter1_exec", Location: "filter-stage-1.prl"},
		{Name: "filter2_exec", Location: "filter-stage-2.prl"},
		{Name: "repeat2tab_exec", Location: "repeat2tab.py"},
		{Name: "alienhunter_exec", Location: "alien_hunter"},
		{Name: "merger_exec", Location: "gfind_merger.py"},
	}.withDefaults()
}

// WithStrategy returns a copy of t with every entry forced to s.
func (t Table) WithStrategy(s Strategy) Table {
	out := make(Table, len(t))
	for i, d := range t {
		d.Strategy = s
		out[i] = d
	}
	return out
}

func (t Table) withDefaults() Table {
	for i := range t {
		if t[i].Strategy == "" {
			t[i].Strategy = StrategyAuto
		}
	}
	return t
}

// Validate rejects empty names/locations, duplicate names and unknown strategies.
func (t Table) Validate() error {
	seen := make(map[string]struct{}, len(t))
	for i, d := range t {
		if strings.TrimSpace(d.Name) == "" {
			return errors.Errorf("dependency %d: empty name", i+1)
		}
		if strings.TrimSpace(d.Location) == "" {
			return errors.Errorf("dependency %s: empty location", d.Name)
		}
		if _, dup := seen[d.Name]; dup {
			return errors.Errorf("dependency %s: listed twice", d.Name)
		}
		seen[d.Name] = struct{}{}
		if _, err := ParseStrategy(string(d.Strategy)); err != nil {
			return errors.Wrapf(err, "dependency %s", d.Name)
		}
	}
	return nil
}
