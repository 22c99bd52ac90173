package helpers

import (
	"fmt"

	"github.com/devantler-tech/farmops/pkg/config"
	"github.com/spf13/cobra"
)

// LoadConfig resolves the configuration for cmd: defaults, then the config file (the
// --config path if given), then FARMOPS_* and legacy environment variables, then any
// flag the user set on the command line.
func LoadConfig(cmd *cobra.Command) (config.Config, error) {
	if cmd == nil {
		return config.Config{}, ErrNilCommand
	}

	v := config.NewViper()

	path, _ := cmd.Flags().GetString(ConfigFlagName)
	if path != "" {
		v.SetConfigFile(path)
	}

	err := config.BindFlags(v, cmd.Flags())
	if err != nil {
		return config.Config{}, err //nolint:wrapcheck // already describes the flag
	}

	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, fmt.Errorf("load configuration: %w", err)
	}

	return cfg, nil
}
