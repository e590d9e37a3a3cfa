// internal/fasta/inspect.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrNotFASTA means the first non-blank line is not a '>' header.
var ErrNotFASTA = errors.New("not a FASTA file")

// Summary describes a FASTA stream.
type Summary struct {
	Records int
	Bases   int64
	FirstID string
}

// Inspect opens path (gzip aware) and summarizes it.
func Inspect(ctx context.Context, path string) (Summary, error) {
	rc, err := Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer rc.Close()
	s, err := Scan(ctx, rc)
	if err != nil {
		return s, errors.Wrapf(err, "%s", path)
	}
	return s, nil
}

// Scan reads FASTA from r. It fails with ErrNotFASTA when the first
// non-blank line is not a header. It is cancelable between lines.
func Scan(ctx context.Context, r io.Reader) (Summary, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		s     Summary
		lines int
	)
	for sc.Scan() {
		if lines++; lines%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return s, err
			}
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if s.Records == 0 {
				s.FirstID = headerID(line)
			}
			s.Records++
			continue
		}
		if s.Records == 0 {
			return s, ErrNotFASTA
		}
		s.Bases += int64(len(line))
	}
	if err := sc.Err(); err != nil {
		return s, errors.Wrap(err, "scan")
	}
	if s.Records == 0 {
		return s, ErrNotFASTA
	}
	return s, nil
}

func headerID(line []byte) string {
	h := bytes.TrimSpace(line[1:])
	if i := bytes.IndexAny(h, " \t"); i >= 0 {
		h = h[:i]
	}
	return string(h)
}
