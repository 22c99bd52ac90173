// Package probe provides readiness probes and liveness checks for the services of a
// farmOS deployment: Docker containers, commands executed inside them, HTTP endpoints,
// PostgreSQL, and local commands.
//
// Probes classify failures with netretry: conditions that indicate a service that is
// still starting are reported as NotReady, anything else as Errored. The poller treats
// both as "not ready yet" unless it is configured to fail on probe errors.
package probe
