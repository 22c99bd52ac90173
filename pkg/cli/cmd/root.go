package cmd

import (
	"context"
	"fmt"

	"github.com/devantler-tech/farmops/pkg/cli/helpers"
	"github.com/devantler-tech/farmops/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/farmops/pkg/config"
	"github.com/devantler-tech/farmops/pkg/di"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return newRootCmd(di.NewRuntime(), version, commit, date)
}

func newRootCmd(runtimeContainer *di.Runtime, version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "farmops",
		Short: "farmops installs farmOS and waits for its services to become ready",
		Long: `farmops drives a farmOS Docker Compose project: it waits for the database, ` +
			`web container, and site to become ready, installs farmOS, and validates the result.`,
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	flags := cmd.PersistentFlags()
	flags.String(helpers.ConfigFlagName, "", "Path to a farmops.yaml config file")
	flags.Bool(helpers.VerboseFlagName, false, "Log every poll attempt")
	flags.Bool(helpers.TimingFlagName, false, "Show per-activity timing output")
	flags.String(helpers.MetricsFileFlagName, "", "Write Prometheus metrics to this textfile after the command")
	flags.StringP(helpers.OutputFlagName, "o", config.OutputText, "Output format: text or json")

	cmd.AddCommand(newWaitCmd(runtimeContainer))
	cmd.AddCommand(newInstallCmd(runtimeContainer))
	cmd.AddCommand(newValidateCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(ctx, cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func handleRootRunE(cmd *cobra.Command, _ []string) error {
	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}
