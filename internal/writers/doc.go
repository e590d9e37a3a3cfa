// Package writers turns per-item results into serialized outputs.
//
// Text sinks stream one status line per item as it is produced, which is
// what a user watching a long manifest expects. JSON buffers and writes a
// single array on Close. JSONL streams one object per line. JSON/JSONL go
// through pkg/api (v1) for a stable wire format.
package writers
