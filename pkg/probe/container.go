package probe

import (
	"context"
	"fmt"

	"github.com/devantler-tech/farmops/pkg/client/docker"
	"github.com/devantler-tech/farmops/pkg/readiness"
)

// ContainerLiveness reports the container as gone once it no longer exists or has
// stopped running. Inspect failures count as alive: a flaky daemon is not proof that
// the container is gone.
func ContainerLiveness(api docker.ContainerAPI, name string) readiness.Liveness {
	return func(ctx context.Context) bool {
		state, err := docker.InspectState(ctx, api, name)
		if err != nil {
			return true
		}

		return state.Exists && state.Running
	}
}

// ContainerRunning is ready once the container exists and is running.
func ContainerRunning(api docker.ContainerAPI, name string) readiness.Probe {
	return func(ctx context.Context) readiness.Outcome {
		state, err := docker.InspectState(ctx, api, name)
		if err != nil {
			return readiness.ErrorOutcome(err)
		}

		switch {
		case !state.Exists:
			return readiness.NotReadyOutcome(fmt.Errorf("%w: %s", ErrContainerMissing, name))
		case !state.Running:
			return readiness.NotReadyOutcome(
				fmt.Errorf("%w: %s (status %s)", ErrContainerNotRunning, name, state.Status),
			)
		default:
			return readiness.ReadyOutcome()
		}
	}
}
