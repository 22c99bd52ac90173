// Package docker wraps the subset of the Docker Engine API used to wait for farmOS
// containers: inspecting container state, resolving published ports, and running
// readiness commands with docker exec.
package docker
