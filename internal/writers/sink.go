package writers

import (
	"fmt"
	"io"

	"annotkit/internal/jsonlutil"
	"annotkit/internal/jsonutil"
)

// Sink receives one item at a time and finishes the document on Close.
type Sink[T any] interface {
	Put(T) error
	Close() error
}

// Text describes how a tool renders itself as plain status lines.
// Any nil hook is skipped.
type Text[T any] struct {
	Header func(io.Writer) error
	Line   func(io.Writer, T) error
	Footer func(io.Writer) error
}

// New returns the sink for format. conv maps an item onto its wire type for
// json/jsonl.
func New[T, V any](format string, w io.Writer, text Text[T], conv func(T) V) (Sink[T], error) {
	switch format {
	case "text":
		return newTextSink(w, text)
	case "json":
		return &jsonSink[T, V]{w: w, conv: conv}, nil
	case "jsonl":
		return &jsonlSink[T, V]{enc: jsonlutil.NewEncoder(w), conv: conv}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
}

type textSink[T any] struct {
	w    io.Writer
	text Text[T]
}

func newTextSink[T any](w io.Writer, text Text[T]) (*textSink[T], error) {
	s := &textSink[T]{w: w, text: text}
	if text.Header != nil {
		if err := text.Header(w); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *textSink[T]) Put(v T) error {
	if s.text.Line == nil {
		return nil
	}
	return s.text.Line(s.w, v)
}

func (s *textSink[T]) Close() error {
	if s.text.Footer == nil {
		return nil
	}
	return s.text.Footer(s.w)
}

type jsonSink[T, V any] struct {
	w    io.Writer
	conv func(T) V
	buf  []V
}

func (s *jsonSink[T, V]) Put(v T) error {
	s.buf = append(s.buf, s.conv(v))
	return nil
}

func (s *jsonSink[T, V]) Close() error {
	if s.buf == nil {
		s.buf = []V{}
	}
	return jsonutil.EncodePretty(s.w, s.buf)
}

type jsonlSink[T, V any] struct {
	enc  *jsonlutil.Encoder
	conv func(T) V
}

func (s *jsonlSink[T, V]) Put(v T) error { return s.enc.Encode(s.conv(v)) }

func (s *jsonlSink[T, V]) Close() error {
	if err := s.enc.Close(); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}
