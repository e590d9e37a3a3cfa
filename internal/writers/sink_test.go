package writers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct{ N int }

type wire struct {
	N int `json:"n"`
}

func toWire(i item) wire { return wire{N: i.N} }

func text() Text[item] {
	return Text[item]{
		Header: func(w io.Writer) error { _, err := fmt.Fprintln(w, "start"); return err },
		Line:   func(w io.Writer, i item) error { _, err := fmt.Fprintf(w, "n=%d\n", i.N); return err },
		Footer: func(w io.Writer) error { _, err := fmt.Fprintln(w, "end"); return err },
	}
}

func TestTextSinkStreams(t *testing.T) {
	var b bytes.Buffer
	s, err := New[item, wire]("text", &b, text(), toWire)
	require.NoError(t, err)
	assert.Equal(t, "start\n", b.String(), "header written on construction")
	require.NoError(t, s.Put(item{1}))
	assert.Equal(t, "start\nn=1\n", b.String(), "line written immediately")
	require.NoError(t, s.Close())
	assert.Equal(t, "start\nn=1\nend\n", b.String())
}

func TestJSONSinkWritesArray(t *testing.T) {
	var b bytes.Buffer
	s, err := New[item, wire]("json", &b, text(), toWire)
	require.NoError(t, err)
	require.NoError(t, s.Put(item{1}))
	require.NoError(t, s.Put(item{2}))
	assert.Empty(t, b.String(), "json is buffered until Close")
	require.NoError(t, s.Close())

	var got []wire
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, []wire{{1}, {2}}, got)
}

func TestJSONSinkEmptyIsArray(t *testing.T) {
	var b bytes.Buffer
	s, err := New[item, wire]("json", &b, text(), toWire)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.Equal(t, "[]", strings.TrimSpace(b.String()))
}

func TestJSONLSinkOneObjectPerLine(t *testing.T) {
	var b bytes.Buffer
	s, err := New[item, wire]("jsonl", &b, text(), toWire)
	require.NoError(t, err)
	require.NoError(t, s.Put(item{1}))
	require.NoError(t, s.Put(item{2}))
	require.NoError(t, s.Close())
	assert.Equal(t, "{\"n\":1}\n{\"n\":2}\n", b.String())
}

func TestUnknownFormatError(t *testing.T) {
	_, err := New[item, wire]("fasta", io.Discard, text(), toWire)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(fmt.Errorf("write: %w", io.ErrClosedPipe)))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(io.EOF))
}
