// Package svc provides the service layer between the CLI and the clients.
//
// Subpackages:
//   - waiter: readiness waits with logging, progress, metrics, and reports attached
//   - installer: the farmOS install and validation workflow
package svc
