package di

import (
	"fmt"

	"github.com/devantler-tech/farmops/pkg/metrics"
	"github.com/devantler-tech/farmops/pkg/probe"
	"github.com/devantler-tech/farmops/pkg/utils/timer"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// ResolveTimer retrieves the timer.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolveDockerFactory retrieves the Docker client factory.
func ResolveDockerFactory(injector Injector) (DockerFactory, error) {
	factory, err := do.Invoke[DockerFactory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve docker factory dependency: %w", err)
	}

	return factory, nil
}

// ResolveRunnerFactory retrieves the command runner factory.
func ResolveRunnerFactory(injector Injector) (RunnerFactory, error) {
	factory, err := do.Invoke[RunnerFactory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve runner factory dependency: %w", err)
	}

	return factory, nil
}

// ResolveRecorder retrieves the metrics recorder shared by one invocation.
func ResolveRecorder(injector Injector) (*metrics.Recorder, error) {
	recorder, err := do.Invoke[*metrics.Recorder](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve metrics recorder dependency: %w", err)
	}

	return recorder, nil
}

// ResolvePostgresConnector retrieves the connector used by Postgres probes.
func ResolvePostgresConnector(injector Injector) (probe.Connector, error) {
	connect, err := do.Invoke[probe.Connector](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve postgres connector dependency: %w", err)
	}

	return connect, nil
}

// WithTimer resolves the timer before calling handler.
func WithTimer(
	handler func(cmd *cobra.Command, args []string, injector Injector, tmr timer.Timer) error,
) func(cmd *cobra.Command, args []string, injector Injector) error {
	return func(cmd *cobra.Command, args []string, injector Injector) error {
		tmr, err := ResolveTimer(injector)
		if err != nil {
			return err
		}

		return handler(cmd, args, injector, tmr)
	}
}
