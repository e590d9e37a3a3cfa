// Package metrics collects per-run counters and exports them in the
// node-exporter textfile format, so batch runs can be scraped after the fact.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "annotkit"

// Recorder owns a private registry; nothing is registered globally.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	reg *prometheus.Registry

	depsChecked  *prometheus.CounterVec
	refRecords   *prometheus.CounterVec
	refBytes     prometheus.Counter
	filesWritten *prometheus.CounterVec
}

// New returns a Recorder with every annotkit counter registered.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		depsChecked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "deps",
			Name:      "checked_total",
			Help:      "Dependencies checked, by status (found|missing).",
		}, []string{"status"}),
		refRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "refimport",
			Name:      "records_total",
			Help:      "Manifest results, by outcome.",
		}, []string{"outcome"}),
		refBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "refimport",
			Name:      "bytes_copied_total",
			Help:      "Bytes written to the destination store.",
		}),
		filesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "genconf",
			Name:      "files_written_total",
			Help:      "Config files written, by kind (step|master).",
		}, []string{"kind"}),
	}
	r.reg.MustRegister(r.depsChecked, r.refRecords, r.refBytes, r.filesWritten)
	return r
}

// Registry exposes the underlying registry (tests, custom exporters).
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// DependencyChecked counts one checked dependency.
func (r *Recorder) DependencyChecked(found bool) {
	if r == nil {
		return
	}
	status := "missing"
	if found {
		status = "found"
	}
	r.depsChecked.WithLabelValues(status).Inc()
}

// RecordOutcome counts one importer result.
func (r *Recorder) RecordOutcome(outcome string) {
	if r == nil {
		return
	}
	r.refRecords.WithLabelValues(outcome).Inc()
}

// BytesCopied adds n copied bytes.
func (r *Recorder) BytesCopied(n int64) {
	if r != nil && n > 0 {
		r.refBytes.Add(float64(n))
	}
}

// FileWritten counts one generated config file of the given kind.
func (r *Recorder) FileWritten(kind string) {
	if r == nil {
		return
	}
	r.filesWritten.WithLabelValues(kind).Inc()
}

// WriteTextfile atomically writes every metric to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return errors.Wrapf(err, "write metrics %s", path)
	}
	return nil
}
