package probe

import (
	"context"
	"errors"

	"github.com/devantler-tech/farmops/pkg/readiness"
	"github.com/devantler-tech/farmops/pkg/utils/runner"
)

// Command is ready once a local command exits with code zero. A non-zero exit is
// NotReady; a command that cannot be started is Errored.
func Command(r runner.CommandRunner, cmd runner.Command) readiness.Probe {
	return func(ctx context.Context) readiness.Outcome {
		_, err := r.Run(ctx, cmd)

		switch {
		case err == nil:
			return readiness.ReadyOutcome()
		case errors.Is(err, runner.ErrCommandFailed):
			return readiness.NotReadyOutcome(err)
		default:
			return readiness.ErrorOutcome(err)
		}
	}
}
