// Package errorhandler runs the cobra command tree and turns its failures into a
// single error and a process exit code.
package errorhandler

import (
	"bytes"
	"context"
	"strings"

	"github.com/spf13/cobra"
)

// Executor runs a cobra command while capturing what cobra writes to stderr.
type Executor struct {
	normalizer DefaultNormalizer
}

// NewExecutor constructs an Executor.
func NewExecutor() *Executor {
	return &Executor{normalizer: DefaultNormalizer{}}
}

// Execute runs cmd with ctx. On failure it returns a *CommandError that combines the
// normalized stderr output with the original error chain.
func (e *Executor) Execute(ctx context.Context, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	var errBuf bytes.Buffer

	previous := cmd.ErrOrStderr()

	cmd.SetErr(&errBuf)
	defer cmd.SetErr(previous)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	return &CommandError{
		message: e.normalizer.Normalize(errBuf.String()),
		cause:   err,
	}
}

// CommandError is a command failure with its cleaned-up stderr text.
type CommandError struct {
	message string
	cause   error
}

func (e *CommandError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.cause == nil:
		return e.message
	case e.message == "":
		return e.cause.Error()
	case strings.Contains(e.message, e.cause.Error()):
		return e.message
	default:
		return e.message + ": " + e.cause.Error()
	}
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// DefaultNormalizer cleans up cobra's stderr output.
type DefaultNormalizer struct{}

// Normalize drops the "Error: " prefix cobra adds and the trailing usage hint, and
// trims surrounding whitespace.
func (DefaultNormalizer) Normalize(raw string) string {
	lines := strings.Split(strings.TrimSpace(raw), "\n")

	kept := lines[:0]

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "Run '") && strings.HasSuffix(line, "--help' for usage.") {
			continue
		}

		kept = append(kept, line)
	}

	if len(kept) == 0 {
		return ""
	}

	kept[0] = strings.TrimPrefix(strings.TrimSpace(kept[0]), "Error: ")

	return strings.TrimSpace(strings.Join(kept, "\n"))
}
