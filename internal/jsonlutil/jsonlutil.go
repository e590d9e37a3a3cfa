// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across JSONL encoders to avoid per-run mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Encoder writes one JSON value per line through a pooled buffer.
// Close must be called to flush and release the buffer.
type Encoder struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

// NewEncoder binds a pooled buffer to out.
func NewEncoder(out io.Writer) *Encoder {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	return &Encoder{bw: bw, enc: json.NewEncoder(bw)}
}

// Encode writes v followed by a newline.
func (e *Encoder) Encode(v any) error { return e.enc.Encode(v) }

// Close flushes and returns the buffer to the pool. Safe to call twice.
func (e *Encoder) Close() error {
	if e.bw == nil {
		return nil
	}
	err := e.bw.Flush()
	// Drop references to out before pooling.
	e.bw.Reset(io.Discard)
	bwPool.Put(e.bw)
	e.bw = nil
	return err
}
