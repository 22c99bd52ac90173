package cmd

import (
	"github.com/devantler-tech/farmops/pkg/di"
	"github.com/spf13/cobra"
)

// NewRootCmdWithRuntime builds the root command on a caller-supplied runtime.
func NewRootCmdWithRuntime(runtimeContainer *di.Runtime) *cobra.Command {
	return newRootCmd(runtimeContainer, "test", "none", "unknown")
}
