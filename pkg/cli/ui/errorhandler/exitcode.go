package errorhandler

import (
	"errors"

	"github.com/devantler-tech/farmops/pkg/readiness"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitTimedOut     = 2
	ExitResourceGone = 3
)

// ExitCode maps an error returned by a command to the process exit code. A timed out
// wait is 2 and a vanished resource is 3 so scripts can tell them apart.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, readiness.ErrResourceGone):
		return ExitResourceGone
	case errors.Is(err, readiness.ErrTimedOut):
		return ExitTimedOut
	default:
		return ExitFailure
	}
}
