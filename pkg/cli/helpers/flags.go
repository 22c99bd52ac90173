package helpers

import (
	"errors"
	"fmt"

	"github.com/devantler-tech/farmops/pkg/utils/timer"
	"github.com/spf13/cobra"
)

// Persistent flag names of the root command.
const (
	ConfigFlagName      = "config"
	VerboseFlagName     = "verbose"
	TimingFlagName      = "timing"
	MetricsFileFlagName = "metrics-file"
	OutputFlagName      = "output"
)

// ErrNilCommand is returned when a helper receives a nil command.
var ErrNilCommand = errors.New("command is nil")

// IsTimingEnabled reports the value of the --timing flag, wherever it is declared.
func IsTimingEnabled(cmd *cobra.Command) (bool, error) {
	if cmd == nil {
		return false, ErrNilCommand
	}

	enabled, err := cmd.Flags().GetBool(TimingFlagName)
	if err == nil {
		return enabled, nil
	}

	enabled, err = cmd.InheritedFlags().GetBool(TimingFlagName)
	if err != nil {
		return false, fmt.Errorf("get %s flag: %w", TimingFlagName, err)
	}

	return enabled, nil
}

// MaybeTimer returns tmr when --timing is set, and nil otherwise.
func MaybeTimer(cmd *cobra.Command, tmr timer.Timer) timer.Timer {
	if tmr == nil {
		return nil
	}

	enabled, err := IsTimingEnabled(cmd)
	if err != nil || !enabled {
		return nil
	}

	return tmr
}
