package deps

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// fileTable is the on-disk shape of a dependency table:
//
//	dependencies:
//	  - name: prodigal_exec
//	    location: prodigal
//	  - name: rfam_cm
//	    location: /data/blastdb/Rfam/Rfam.cm
//	    strategy: path
type fileTable struct {
	Dependencies []fileDependency `yaml:"dependencies"`
}

type fileDependency struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Strategy string `yaml:"strategy"`
}

// LoadFile reads a YAML dependency table from path.
func LoadFile(path string) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read dependency table")
	}
	t, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return t, nil
}

// Decode parses a YAML dependency table. Unknown keys are rejected so a
// typo in "strategy" does not silently fall back to auto.
func Decode(r io.Reader) (Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ft fileTable
	if err := dec.Decode(&ft); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty dependency table")
		}
		return nil, errors.Wrap(err, "decode dependency table")
	}
	if len(ft.Dependencies) == 0 {
		return nil, errors.New("empty dependency table")
	}

	t := make(Table, 0, len(ft.Dependencies))
	for _, fd := range ft.Dependencies {
		st, err := ParseStrategy(fd.Strategy)
		if err != nil {
			return nil, errors.Wrapf(err, "dependency %s", fd.Name)
		}
		t = append(t, Dependency{Name: fd.Name, Location: fd.Location, Strategy: st})
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
