// Package manifest parses reference-genome manifests.
//
// A manifest is line oriented. Lines starting with '!' are comments and
// whitespace-only lines are ignored. A line containing "||" is a record:
//
//	common_name||genus||species_strain||/path/to/genome.fasta
//
// Any other line is a bare path to check for existence.
package manifest

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies one manifest line.
type Kind int

const (
	Comment Kind = iota
	Blank
	BarePath
	Record
	Malformed
)

func (k Kind) String() string {
	switch k {
	case Comment:
		return "comment"
	case Blank:
		return "blank"
	case BarePath:
		return "path"
	case Record:
		return "record"
	case Malformed:
		return "malformed"
	}
	return "unknown"
}

const (
	commentPrefix = "!"
	fieldSep      = "||"
	recordFields  = 4
)

// Entry is one classified line. Line is 1-based.
type Entry struct {
	Kind Kind
	Line int
	Text string // the raw line, without the trailing newline

	// Path is set for BarePath and Record.
	Path string

	// Record fields.
	CommonName    string
	Genus         string
	SpeciesStrain string
}

// Skipped reports whether the entry produces no work.
func (e Entry) Skipped() bool { return e.Kind == Comment || e.Kind == Blank }

// Classify turns one line into an Entry.
func Classify(lineNo int, line string) Entry {
	line = strings.TrimRight(line, "\r\n")
	e := Entry{Line: lineNo, Text: line}
	switch {
	case strings.HasPrefix(line, commentPrefix):
		e.Kind = Comment
	case strings.TrimSpace(line) == "":
		e.Kind = Blank
	case strings.Contains(line, fieldSep):
		fields := strings.Split(line, fieldSep)
		if len(fields) != recordFields {
			e.Kind = Malformed
			return e
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
			if fields[i] == "" {
				e.Kind = Malformed
				return e
			}
		}
		e.Kind = Record
		e.CommonName, e.Genus, e.SpeciesStrain, e.Path = fields[0], fields[1], fields[2], fields[3]
	default:
		e.Kind = BarePath
		e.Path = strings.TrimSpace(line)
	}
	return e
}

// Scan classifies r line by line and calls emit for every entry,
// skipped ones included.
func Scan(r io.Reader, emit func(Entry) error) error {
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if eerr := emit(Classify(n, line)); eerr != nil {
				return eerr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "read line %d", n)
		}
	}
}

// Parse reads a whole manifest.
func Parse(r io.Reader) ([]Entry, error) {
	var out []Entry
	err := Scan(r, func(e Entry) error {
		out = append(out, e)
		return nil
	})
	return out, err
}
