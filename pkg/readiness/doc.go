// Package readiness provides the readiness poller used to wait for containers and
// services to finish initializing.
//
// A wait repeatedly invokes a Probe until it reports ready, the configured maximum
// wait is exceeded, or an optional Liveness check reports that the awaited resource
// is gone. Each wait ends in exactly one terminal Result:
//   - Ready: the probe succeeded
//   - TimedOut: elapsed time reached the maximum wait before the probe succeeded
//   - ResourceGone: the liveness check failed, waiting further is futile
//
// Elapsed time is accounted in whole poll intervals rather than wall-clock time, so a
// wait is fully deterministic given its probe and liveness sequence.
package readiness
