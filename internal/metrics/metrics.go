// Package metrics counts validation outcomes for the typeguard CLI.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the counters of a single CLI run. Each Recorder owns its
// registry, so tests and concurrent runs do not share state.
type Recorder struct {
	registry  *prometheus.Registry
	checked   *prometheus.CounterVec
	failed    *prometheus.CounterVec
	documents prometheus.Counter
}

// NewRecorder creates a Recorder with its counters registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		checked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typeguard_candidates_checked_total",
				Help: "Total number of candidates validated",
			},
			[]string{"schema"},
		),
		failed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typeguard_candidates_failed_total",
				Help: "Total number of candidates that failed validation",
			},
			[]string{"schema"},
		),
		documents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "typeguard_documents_read_total",
			Help: "Total number of documents decoded",
		}),
	}
	r.registry.MustRegister(r.checked, r.failed, r.documents)
	return r
}

// Document records one decoded document.
func (r *Recorder) Document() {
	r.documents.Inc()
}

// Candidate records the outcome of one validation against schema.
func (r *Recorder) Candidate(schema string, ok bool) {
	r.checked.WithLabelValues(schema).Inc()
	if !ok {
		r.failed.WithLabelValues(schema).Inc()
	}
}

// Registry exposes the underlying registry, e.g. for testutil helpers.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteFile writes the counters in the Prometheus text format, ready for the
// node_exporter textfile collector.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
