package main

import (
	"bytes"
	"testing"

	"github.com/devantler-tech/farmops/pkg/cli/ui/errorhandler"
	"github.com/stretchr/testify/assert"
)

func TestRunSafely_ReturnsRunnerExitCode(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	code := runSafely([]string{"wait"}, func(args []string) int {
		assert.Equal(t, []string{"wait"}, args)

		return errorhandler.ExitTimedOut
	}, &errOut)

	assert.Equal(t, errorhandler.ExitTimedOut, code)
	assert.Empty(t, errOut.String())
}

func TestRunSafely_RecoversPanics(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	code := runSafely(nil, func([]string) int {
		panic("boom")
	}, &errOut)

	assert.Equal(t, errorhandler.ExitFailure, code)
	assert.Contains(t, errOut.String(), "✗ panic recovered: boom")
}

func TestRunWithArgs_Version(t *testing.T) {
	t.Parallel()

	assert.Equal(t, errorhandler.ExitOK, runWithArgs([]string{"--version"}))
}
