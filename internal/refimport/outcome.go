package refimport

import (
	"fmt"
	"strings"

	"annotkit/internal/manifest"
)

// Outcome is what happened to one manifest entry.
type Outcome string

const (
	Found     Outcome = "found"
	NotFound  Outcome = "not_found"
	NotAFile  Outcome = "not_a_file"
	Invalid   Outcome = "invalid"
	Copied    Outcome = "copied"
	Malformed Outcome = "malformed"
)

// Result is one reported event. A copied record yields a Found result
// followed by a Copied one.
type Result struct {
	Manifest string
	Entry    manifest.Entry
	Outcome  Outcome

	// Copy fields, set when Outcome is Copied.
	Key         string
	Destination string
	Bytes       int64
	SHA256      string

	// Detail explains NotFound/Invalid outcomes when there is more to say.
	Detail string
}

// Source is the path the entry refers to.
func (r Result) Source() string { return r.Entry.Path }

// Summary counts results across a run. Found includes records that were
// later copied.
type Summary struct {
	Found     int
	NotFound  int
	NotAFile  int
	Invalid   int
	Copied    int
	Malformed int
}

// Add counts one result.
func (s *Summary) Add(o Outcome) {
	switch o {
	case Found:
		s.Found++
	case NotFound:
		s.NotFound++
	case NotAFile:
		s.NotAFile++
	case Invalid:
		s.Invalid++
	case Copied:
		s.Copied++
	case Malformed:
		s.Malformed++
	}
}

// Merge adds o's counts to s.
func (s *Summary) Merge(o Summary) {
	s.Found += o.Found
	s.NotFound += o.NotFound
	s.NotAFile += o.NotAFile
	s.Invalid += o.Invalid
	s.Copied += o.Copied
	s.Malformed += o.Malformed
}

// String renders the one-line run summary.
func (s Summary) String() string {
	parts := []string{
		fmt.Sprintf("%d found", s.Found),
		fmt.Sprintf("%d not found", s.NotFound),
		fmt.Sprintf("%d not a file", s.NotAFile),
		fmt.Sprintf("%d copied", s.Copied),
	}
	if s.Invalid > 0 {
		parts = append(parts, fmt.Sprintf("%d invalid", s.Invalid))
	}
	if s.Malformed > 0 {
		parts = append(parts, fmt.Sprintf("%d malformed", s.Malformed))
	}
	return strings.Join(parts, ", ")
}
