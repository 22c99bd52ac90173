package cmd

import (
	"context"
	"io"

	"github.com/devantler-tech/farmops/pkg/cli/helpers"
	"github.com/devantler-tech/farmops/pkg/config"
	"github.com/devantler-tech/farmops/pkg/di"
	"github.com/devantler-tech/farmops/pkg/probe"
	"github.com/devantler-tech/farmops/pkg/svc/installer"
	"github.com/devantler-tech/farmops/pkg/svc/waiter"
	"github.com/devantler-tech/farmops/pkg/utils/notify"
	"github.com/devantler-tech/farmops/pkg/utils/timer"
	"github.com/spf13/cobra"
)

func newWaitAllCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Wait for the database, www container, and site in parallel",
		Long: `Wait for every service of the farmOS compose project at once. The first ` +
			`service that fails cancels the others.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: withSession(runtimeContainer, func(cmd *cobra.Command, _ []string, sess *session) error {
			tmr, err := di.ResolveTimer(sess.injector)
			if err != nil {
				return err //nolint:wrapcheck // resolver adds context
			}

			return sess.waitAll(cmd, helpers.MaybeTimer(cmd, tmr))
		}),
	}

	addProjectFlags(cmd)
	cmd.Flags().IntSlice("accept-status", config.Default().HTTP.AcceptStatus, "HTTP status codes that count as ready")

	return cmd
}

func (s *session) waitAll(cmd *cobra.Command, tmr timer.Timer) error {
	api, err := s.docker()
	if err != nil {
		return err
	}

	project := s.cfg.Project

	siteURL, err := installer.ResolveSiteURL(cmd.Context(), api, project)
	if err != nil {
		return err //nolint:wrapcheck // already describes the lookup
	}

	site, err := installer.SiteTarget(
		probe.NewHTTPClient(s.cfg.HTTP.Timeout),
		api,
		project.WWWContainer,
		siteURL,
		s.cfg.HTTP.AcceptStatus,
	)
	if err != nil {
		return err //nolint:wrapcheck // already describes the probe
	}

	// The group owns the terminal; per-target lines would interleave with it.
	wait, err := s.newWaiter(io.Discard)
	if err != nil {
		return err
	}

	targets := []waiter.Target{
		installer.DatabaseTarget(api, project.DBContainer),
		installer.WWWTarget(api, project.WWWContainer),
		site,
	}

	tasks := make([]notify.ProgressTask, 0, len(targets))
	for _, target := range targets {
		tasks = append(tasks, notify.ProgressTask{
			Name: target.Name,
			Fn: func(ctx context.Context) error {
				_, waitErr := wait.Wait(ctx, target)

				return waitErr //nolint:wrapcheck // already prefixed with the target name
			},
		})
	}

	opts := []notify.ProgressOption{}
	if tmr != nil {
		tmr.Start()

		opts = append(opts, notify.WithTimer(tmr))
	}

	// The unwrapped stdout lets the group detect a terminal.
	out := s.out
	if s.reports == nil {
		out = cmd.OutOrStdout()
	}

	group := notify.NewProgressGroup("Waiting for services", "⏳", out, opts...)

	return group.Run(cmd.Context(), tasks...) //nolint:wrapcheck // already prefixed with the task name
}

// addProjectFlags registers the flags that locate the compose project.
func addProjectFlags(cmd *cobra.Command) {
	def := config.Default().Project
	flags := cmd.Flags()

	flags.String("project-dir", def.Dir, "Directory of the compose project")
	flags.String("compose-file", def.ComposeFile, "Compose file, relative to the project directory")
	flags.String("db-container", def.DBContainer, "Name of the database container")
	flags.String("www-container", def.WWWContainer, "Name of the www container")
	flags.String("site-url", def.SiteURL, "URL of the site (empty resolves the published port of the www container)")
}
