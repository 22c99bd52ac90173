package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/devantler-tech/farmops/pkg/client/docker"
	"github.com/devantler-tech/farmops/pkg/readiness"
)

// Exec is ready once cmd exits with code zero inside the named container. A non-zero
// exit is NotReady; a Docker API failure is Errored.
func Exec(api docker.ContainerAPI, name string, cmd ...string) readiness.Probe {
	return func(ctx context.Context) readiness.Outcome {
		result, err := docker.Exec(ctx, api, name, cmd)
		if err != nil {
			return readiness.ErrorOutcome(err)
		}

		if result.ExitCode != 0 {
			detail := strings.TrimSpace(result.Stderr)
			if detail == "" {
				detail = strings.TrimSpace(result.Stdout)
			}

			return readiness.NotReadyOutcome(fmt.Errorf(
				"%w: %s: exit code %d: %s",
				ErrNonZeroExit, strings.Join(cmd, " "), result.ExitCode, detail,
			))
		}

		return readiness.ReadyOutcome()
	}
}
