// Package cmd provides the farmops command-line interface.
//
// The root command carries the global flags and delegates to:
//   - wait: block until a container, command, URL, database, or the whole stack is ready
//   - install: bring up the compose project and install farmOS
//   - validate: check that an installed site is healthy
package cmd
