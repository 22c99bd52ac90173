// Package metrics records readiness waits in a private Prometheus registry that can be
// written out in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"sync"

	"github.com/devantler-tech/farmops/pkg/readiness"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "farmops"

// Recorder owns the wait metrics. The zero value is not usable; call NewRecorder.
type Recorder struct {
	registry *prometheus.Registry
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
	results  *prometheus.CounterVec
}

// NewRecorder registers the wait metrics in a fresh registry.
func NewRecorder() *Recorder {
	rec := &Recorder{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wait",
			Name:      "attempts_total",
			Help:      "Probe invocations per awaited resource.",
		}, []string{"resource"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "wait",
			Name:      "duration_seconds",
			Help:      "Accumulated wait time until a terminal result.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}, []string{"resource", "result"}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wait",
			Name:      "results_total",
			Help:      "Finished waits by result.",
		}, []string{"resource", "result"}),
	}

	rec.registry.MustRegister(rec.attempts, rec.duration, rec.results)

	return rec
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observer returns a readiness observer for one wait on resource. Attempts are counted
// as they happen; the result and duration are recorded once the state turns terminal.
func (r *Recorder) Observer(resource string) readiness.Observer {
	var (
		mu      sync.Mutex
		counted int
	)

	return func(state readiness.State) {
		mu.Lock()
		delta := state.Attempts - counted
		counted = state.Attempts
		mu.Unlock()

		if delta > 0 {
			r.attempts.WithLabelValues(resource).Add(float64(delta))
		}

		if state.Result.Terminal() {
			r.finish(resource, state.Result.String(), state)
		}
	}
}

// RecordAborted records a wait that ended without a terminal result, such as a
// cancelled wait or a probe failure in strict mode.
func (r *Recorder) RecordAborted(resource, reason string, state readiness.State) {
	r.finish(resource, reason, state)
}

func (r *Recorder) finish(resource, result string, state readiness.State) {
	r.results.WithLabelValues(resource, result).Inc()
	r.duration.WithLabelValues(resource, result).Observe(state.Elapsed.Seconds())
}

// WriteTextfile atomically writes the registry to path in the Prometheus text format.
func (r *Recorder) WriteTextfile(path string) error {
	err := prometheus.WriteToTextfile(path, r.registry)
	if err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}

	return nil
}
