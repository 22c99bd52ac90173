package cmd

import (
	"fmt"
	"io"

	"github.com/devantler-tech/farmops/pkg/config"
	"github.com/devantler-tech/farmops/pkg/di"
	"github.com/devantler-tech/farmops/pkg/probe"
	"github.com/devantler-tech/farmops/pkg/readiness"
	"github.com/devantler-tech/farmops/pkg/svc/waiter"
	"github.com/devantler-tech/farmops/pkg/utils/runner"
	"github.com/spf13/cobra"
)

const containerFlagName = "container"

func newWaitCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Wait for a resource to become ready",
		Long: `Poll a resource at a fixed interval until it is ready, the maximum wait elapses, ` +
			`or the resource disappears.

Exit codes: 0 ready, 1 failure, 2 timed out, 3 resource gone.`,
		Args:         cobra.NoArgs,
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	def := config.Default().Wait
	flags := cmd.PersistentFlags()
	flags.Duration("max-wait", def.MaxWait, "Give up after this long (bare numbers are seconds in config and env)")
	flags.Duration("interval", def.Interval, "Delay between attempts")
	flags.Int("progress-every", def.ProgressEvery, "Print a progress line every N attempts (0 disables)")
	flags.Bool("fail-on-probe-error", def.FailOnProbeError, "Stop at the first probe error instead of retrying")

	cmd.AddCommand(newWaitCommandCmd(runtimeContainer))
	cmd.AddCommand(newWaitContainerCmd(runtimeContainer))
	cmd.AddCommand(newWaitExecCmd(runtimeContainer))
	cmd.AddCommand(newWaitHTTPCmd(runtimeContainer))
	cmd.AddCommand(newWaitPostgresCmd(runtimeContainer))
	cmd.AddCommand(newWaitAllCmd(runtimeContainer))

	return cmd
}

func newWaitCommandCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmd -- <command...>",
		Short: "Wait until a local command succeeds",
		Long: `Run a local command until it exits 0. A non-zero exit is retried; a command ` +
			`that cannot be started is a probe error.`,
		Example:      `  farmops wait cmd -- docker compose exec -T db pg_isready`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: withSession(runtimeContainer, func(cmd *cobra.Command, args []string, sess *session) error {
			runnerFactory, err := di.ResolveRunnerFactory(sess.injector)
			if err != nil {
				return err //nolint:wrapcheck // resolver adds context
			}

			liveness, err := sess.containerLiveness(cmd)
			if err != nil {
				return err
			}

			command := runner.Command{Name: args[0], Args: args[1:]}

			return sess.wait(cmd, waiter.Target{
				Name:     command.String(),
				Probe:    probe.Command(runnerFactory(io.Discard, io.Discard), command),
				Liveness: liveness,
			})
		}),
	}

	cmd.Flags().String(containerFlagName, "", "Abort when this container stops or is removed")

	return cmd
}

func newWaitContainerCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:          "container <name>",
		Short:        "Wait until a container is running",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: withSession(runtimeContainer, func(cmd *cobra.Command, args []string, sess *session) error {
			api, err := sess.docker()
			if err != nil {
				return err
			}

			return sess.wait(cmd, waiter.Target{
				Name:  args[0],
				Probe: probe.ContainerRunning(api, args[0]),
			})
		}),
	}
}

func newWaitExecCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <container> -- <command...>",
		Short: "Wait until a command succeeds inside a container",
		Long: `Run a command inside a container until it exits 0. The wait ends early if the ` +
			`container stops or is removed.`,
		Example:      `  farmops wait exec farmos-db-1 -- pg_isready`,
		Args:         cobra.MinimumNArgs(2), //nolint:mnd // container and command
		SilenceUsage: true,
		RunE: withSession(runtimeContainer, func(cmd *cobra.Command, args []string, sess *session) error {
			api, err := sess.docker()
			if err != nil {
				return err
			}

			name := args[0]

			return sess.wait(cmd, waiter.Target{
				Name:     name,
				Probe:    probe.Exec(api, name, args[1:]...),
				Liveness: probe.ContainerLiveness(api, name),
			})
		}),
	}
}

func newWaitHTTPCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http <url>",
		Short: "Wait until a URL answers with an accepted status",
		Long: `GET a URL until it answers with one of the accepted status codes. Redirects are ` +
			`not followed, so list 302 in --accept-status to accept one.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: withSession(runtimeContainer, func(cmd *cobra.Command, args []string, sess *session) error {
			httpProbe, err := probe.HTTP(
				probe.NewHTTPClient(sess.cfg.HTTP.Timeout),
				args[0],
				sess.cfg.HTTP.AcceptStatus,
			)
			if err != nil {
				return fmt.Errorf("build http probe: %w", err)
			}

			liveness, err := sess.containerLiveness(cmd)
			if err != nil {
				return err
			}

			return sess.wait(cmd, waiter.Target{Name: args[0], Probe: httpProbe, Liveness: liveness})
		}),
	}

	def := config.Default().HTTP
	cmd.Flags().IntSlice("accept-status", def.AcceptStatus, "HTTP status codes that count as ready")
	cmd.Flags().Duration("http-timeout", def.Timeout, "Timeout of a single request")
	cmd.Flags().String(containerFlagName, "", "Abort when this container stops or is removed")

	return cmd
}

func newWaitPostgresCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "postgres [dsn]",
		Short:        "Wait until PostgreSQL accepts connections",
		Long:         `Connect and ping PostgreSQL until it answers. The DSN defaults to database.url.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: withSession(runtimeContainer, func(cmd *cobra.Command, args []string, sess *session) error {
			dsn := sess.cfg.Database.URL
			if len(args) == 1 {
				dsn = args[0]
			}

			connect, err := di.ResolvePostgresConnector(sess.injector)
			if err != nil {
				return err //nolint:wrapcheck // resolver adds context
			}

			liveness, err := sess.containerLiveness(cmd)
			if err != nil {
				return err
			}

			return sess.wait(cmd, waiter.Target{
				Name:     "postgres",
				Probe:    probe.Postgres(dsn, connect),
				Liveness: liveness,
			})
		}),
	}

	cmd.Flags().String("database-url", config.Default().Database.URL, "PostgreSQL DSN used when no argument is given")
	cmd.Flags().String(containerFlagName, "", "Abort when this container stops or is removed")

	return cmd
}

// wait runs a single target with the session's waiter writing to the command output.
func (s *session) wait(cmd *cobra.Command, target waiter.Target) error {
	wait, err := s.newWaiter(s.out)
	if err != nil {
		return err
	}

	_, err = wait.Wait(cmd.Context(), target)

	return err //nolint:wrapcheck // already prefixed with the target name
}

// containerLiveness returns a liveness check for --container, or nil when it is unset.
func (s *session) containerLiveness(cmd *cobra.Command) (readiness.Liveness, error) {
	name, _ := cmd.Flags().GetString(containerFlagName)
	if name == "" {
		return nil, nil //nolint:nilnil // no liveness is a valid choice
	}

	api, err := s.docker()
	if err != nil {
		return nil, err
	}

	return probe.ContainerLiveness(api, name), nil
}
