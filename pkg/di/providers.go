package di

import (
	"io"

	"github.com/devantler-tech/farmops/pkg/client/docker"
	"github.com/devantler-tech/farmops/pkg/metrics"
	"github.com/devantler-tech/farmops/pkg/probe"
	"github.com/devantler-tech/farmops/pkg/utils/runner"
	"github.com/devantler-tech/farmops/pkg/utils/timer"
	"github.com/samber/do/v2"
)

// DockerFactory connects to the Docker engine. It is resolved lazily so commands that
// never touch Docker do not need a daemon.
type DockerFactory func() (docker.ContainerAPI, error)

// RunnerFactory builds a command runner that mirrors output to the given writers.
type RunnerFactory func(stdout, stderr io.Writer) runner.CommandRunner

// NewRuntime returns the runtime used by the root command.
func NewRuntime() *Runtime {
	return New(
		provideTimer,
		provideDockerFactory,
		provideRunnerFactory,
		provideRecorder,
		providePostgresConnector,
	)
}

func provideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

func provideDockerFactory(i Injector) error {
	do.Provide(i, func(Injector) (DockerFactory, error) {
		return func() (docker.ContainerAPI, error) {
			return docker.GetDockerClient()
		}, nil
	})

	return nil
}

func provideRunnerFactory(i Injector) error {
	do.Provide(i, func(Injector) (RunnerFactory, error) {
		return func(stdout, stderr io.Writer) runner.CommandRunner {
			return runner.NewExecRunner(stdout, stderr)
		}, nil
	})

	return nil
}

func provideRecorder(i Injector) error {
	do.Provide(i, func(Injector) (*metrics.Recorder, error) {
		return metrics.NewRecorder(), nil
	})

	return nil
}

func providePostgresConnector(i Injector) error {
	do.Provide(i, func(Injector) (probe.Connector, error) {
		return probe.PgxConnector, nil
	})

	return nil
}
