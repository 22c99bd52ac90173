package probe_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/devantler-tech/farmops/pkg/probe"
	"github.com/devantler-tech/farmops/pkg/readiness"
	"github.com/devantler-tech/farmops/pkg/utils/runner"
	"github.com/stretchr/testify/assert"
)

var errNotFoundInPath = errors.New("exec: \"drush\": executable file not found in $PATH")

type stubRunner struct {
	err  error
	cmds []runner.Command
}

func (s *stubRunner) Run(_ context.Context, cmd runner.Command) (runner.CommandResult, error) {
	s.cmds = append(s.cmds, cmd)

	return runner.CommandResult{}, s.err
}

func TestCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected readiness.Status
	}{
		{name: "exit zero", expected: readiness.Succeeded},
		{
			name:     "non-zero exit",
			err:      fmt.Errorf("%w: curl: exit code 7", runner.ErrCommandFailed),
			expected: readiness.NotReady,
		},
		{name: "cannot start", err: errNotFoundInPath, expected: readiness.Errored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stub := &stubRunner{err: tt.err}
			cmd := runner.Command{Name: "curl", Args: []string{"-sf", "http://localhost"}}

			outcome := probe.Command(stub, cmd)(context.Background())

			assert.Equal(t, tt.expected, outcome.Status)
			assert.Equal(t, []runner.Command{cmd}, stub.cmds)
		})
	}
}
