package metrics

import "github.com/prometheus/client_golang/prometheus"

// AttemptsFor exposes the attempts counter of one resource to external tests.
func AttemptsFor(r *Recorder, resource string) prometheus.Counter {
	return r.attempts.WithLabelValues(resource)
}
