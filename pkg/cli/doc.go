// Package cli provides the farmops command line.
//
//   - cli/cmd: the cobra command tree
//   - cli/helpers: flag names, --timing handling, and config loading for commands
//   - cli/ui/errorhandler: command execution, error normalization, and exit codes
package cli
