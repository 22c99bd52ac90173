package cmd

import (
	"os"

	"github.com/devantler-tech/farmops/pkg/cli/helpers"
	"github.com/devantler-tech/farmops/pkg/di"
	"github.com/devantler-tech/farmops/pkg/svc/installer"
	"github.com/devantler-tech/farmops/pkg/utils/timer"
	"github.com/spf13/cobra"
)

func newInstallCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Start the compose project and install farmOS",
		Long: `Start the farmOS compose project, wait for the database and www containers, ` +
			`install composer dependencies, run drush site:install, and wait for the site.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: withSession(runtimeContainer, func(cmd *cobra.Command, _ []string, sess *session) error {
			tmr, err := di.ResolveTimer(sess.injector)
			if err != nil {
				return err //nolint:wrapcheck // resolver adds context
			}

			inst, err := sess.installer(cmd, helpers.MaybeTimer(cmd, tmr))
			if err != nil {
				return err
			}

			return inst.Install(cmd.Context()) //nolint:wrapcheck // steps are prefixed with their title
		}),
	}

	addProjectFlags(cmd)

	return cmd
}

func newValidateCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that an installed farmOS site is healthy",
		Long: `Check that the site answers, that the Drupal version satisfies ` +
			`site.drupal-constraint, and that the farm module is enabled.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: withSession(runtimeContainer, func(cmd *cobra.Command, _ []string, sess *session) error {
			inst, err := sess.installer(cmd, nil)
			if err != nil {
				return err
			}

			return inst.Validate(cmd.Context()) //nolint:wrapcheck // joins the failed checks
		}),
	}

	addProjectFlags(cmd)

	return cmd
}

func (s *session) installer(cmd *cobra.Command, tmr timer.Timer) (*installer.FarmOSInstaller, error) {
	api, err := s.docker()
	if err != nil {
		return nil, err
	}

	runnerFactory, err := di.ResolveRunnerFactory(s.injector)
	if err != nil {
		return nil, err //nolint:wrapcheck // resolver adds context
	}

	wait, err := s.newWaiter(s.out)
	if err != nil {
		return nil, err
	}

	// Tool output streams to the terminal in text mode; JSON mode keeps stdout for reports.
	cmdRunner := runnerFactory(s.out, os.Stderr)

	return installer.NewFarmOSInstaller(
		s.cfg,
		api,
		cmdRunner,
		wait,
		installer.WithOutput(s.out),
		installer.WithTimer(tmr),
	), nil
}
