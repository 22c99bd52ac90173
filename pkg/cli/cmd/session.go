package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/devantler-tech/farmops/pkg/cli/helpers"
	"github.com/devantler-tech/farmops/pkg/client/docker"
	"github.com/devantler-tech/farmops/pkg/config"
	"github.com/devantler-tech/farmops/pkg/di"
	"github.com/devantler-tech/farmops/pkg/metrics"
	"github.com/devantler-tech/farmops/pkg/report"
	"github.com/devantler-tech/farmops/pkg/svc/waiter"
	"github.com/devantler-tech/farmops/pkg/utils/logging"
	"github.com/devantler-tech/farmops/pkg/utils/notify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// session is the per-invocation state shared by every subcommand: the resolved
// configuration and the reporting stack built from it.
type session struct {
	cfg      config.Config
	injector di.Injector
	// out receives notify lines; it discards them in JSON mode.
	out      io.Writer
	logger   *logrus.Logger
	recorder *metrics.Recorder
	reports  *report.Writer
	runID    string
}

func newSession(cmd *cobra.Command, injector di.Injector) (*session, error) {
	cfg, err := helpers.LoadConfig(cmd)
	if err != nil {
		return nil, err //nolint:wrapcheck // already describes the config problem
	}

	recorder, err := di.ResolveRecorder(injector)
	if err != nil {
		return nil, err //nolint:wrapcheck // resolver adds context
	}

	jsonOutput := cfg.Output == config.OutputJSON

	// cobra's stderr is captured by the executor for error messages, so logs go to
	// the process stderr directly.
	logger := logging.New(logging.Options{Out: os.Stderr, Verbose: cfg.Verbose, JSON: jsonOutput})
	if !cfg.Verbose && !jsonOutput {
		logger.SetLevel(logrus.WarnLevel)
	}

	sess := &session{
		cfg:      cfg,
		injector: injector,
		out:      notify.NewStageSeparatingWriter(cmd.OutOrStdout()),
		logger:   logger,
		recorder: recorder,
		runID:    report.NewRunID(),
	}

	if jsonOutput {
		sess.out = io.Discard
		sess.reports = report.NewWriter(cmd.OutOrStdout())
	}

	return sess, nil
}

// newWaiter returns a Waiter that writes notify lines to out.
func (s *session) newWaiter(out io.Writer) (*waiter.Waiter, error) {
	return waiter.New( //nolint:wrapcheck // waiter.New describes the invalid setting
		s.cfg.Wait.Readiness(),
		waiter.WithOutput(out),
		waiter.WithProgressEvery(s.cfg.Wait.ProgressEvery),
		waiter.WithLogger(s.logger),
		waiter.WithRecorder(s.recorder),
		waiter.WithReports(s.reports),
		waiter.WithRunID(s.runID),
	)
}

func (s *session) docker() (docker.ContainerAPI, error) {
	factory, err := di.ResolveDockerFactory(s.injector)
	if err != nil {
		return nil, err //nolint:wrapcheck // resolver adds context
	}

	api, err := factory()
	if err != nil {
		return nil, fmt.Errorf("connect to docker: %w", err)
	}

	return api, nil
}

// close writes the metrics textfile when one is configured.
func (s *session) close() error {
	if s.cfg.MetricsFile == "" {
		return nil
	}

	err := s.recorder.WriteTextfile(s.cfg.MetricsFile)
	if err != nil {
		return fmt.Errorf("write metrics file: %w", err)
	}

	return nil
}

// withSession adapts a session handler to a cobra RunE backed by runtimeContainer.
func withSession(
	runtimeContainer *di.Runtime,
	handler func(cmd *cobra.Command, args []string, sess *session) error,
) func(*cobra.Command, []string) error {
	return di.RunEWithRuntime(runtimeContainer, func(cmd *cobra.Command, args []string, injector di.Injector) error {
		sess, err := newSession(cmd, injector)
		if err != nil {
			return err
		}

		runErr := handler(cmd, args, sess)

		closeErr := sess.close()
		if closeErr != nil {
			return errors.Join(runErr, closeErr)
		}

		return runErr
	})
}
