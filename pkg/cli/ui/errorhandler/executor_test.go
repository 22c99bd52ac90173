package errorhandler_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/devantler-tech/farmops/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/farmops/pkg/readiness"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestExecutor_Success(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}

	require.NoError(t, errorhandler.NewExecutor().Execute(context.Background(), cmd))
}

func TestExecutor_NilCommand(t *testing.T) {
	t.Parallel()

	require.NoError(t, errorhandler.NewExecutor().Execute(context.Background(), nil))
}

func TestExecutor_PassesContext(t *testing.T) {
	t.Parallel()

	type key struct{}

	ctx := context.WithValue(context.Background(), key{}, "farm")

	var got any

	cmd := &cobra.Command{Use: "test", RunE: func(c *cobra.Command, _ []string) error {
		got = c.Context().Value(key{})

		return nil
	}}

	require.NoError(t, errorhandler.NewExecutor().Execute(ctx, cmd))
	assert.Equal(t, "farm", got)
}

func TestExecutor_KeepsErrorChain(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:           "test",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return fmt.Errorf("www: %w", readiness.ErrTimedOut)
		},
	}

	err := errorhandler.NewExecutor().Execute(context.Background(), cmd)

	var cmdErr *errorhandler.CommandError
	require.ErrorAs(t, err, &cmdErr)
	require.ErrorIs(t, err, readiness.ErrTimedOut)
	assert.Equal(t, "www: "+readiness.ErrTimedOut.Error(), err.Error())
}

func TestExecutor_InvalidSubcommand(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "test"}
	root.AddCommand(&cobra.Command{Use: "valid", Run: func(*cobra.Command, []string) {}})
	root.SetArgs([]string{"invalid"})

	err := errorhandler.NewExecutor().Execute(context.Background(), root)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "invalid"`)
	assert.NotContains(t, err.Error(), "Error: ")
}

func TestCommandError_Error(t *testing.T) {
	t.Parallel()

	var nilErr *errorhandler.CommandError

	assert.Empty(t, nilErr.Error())
	assert.NoError(t, nilErr.Unwrap())
}

func TestDefaultNormalizer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "  \n", want: ""},
		{name: "prefix", raw: "Error: boom\n", want: "boom"},
		{
			name: "usage hint dropped",
			raw:  "Error: unknown flag: --nope\nRun 'farmops wait --help' for usage.\n",
			want: "unknown flag: --nope",
		},
		{name: "multi line", raw: "Error: first\n  second\n", want: "first\n  second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, errorhandler.DefaultNormalizer{}.Normalize(tt.raw))
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: errorhandler.ExitOK},
		{name: "generic", err: errBoom, want: errorhandler.ExitFailure},
		{name: "timed out", err: fmt.Errorf("db: %w", readiness.ErrTimedOut), want: errorhandler.ExitTimedOut},
		{name: "gone", err: fmt.Errorf("db: %w", readiness.ErrResourceGone), want: errorhandler.ExitResourceGone},
		{name: "cancelled", err: readiness.ErrCancelled, want: errorhandler.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, errorhandler.ExitCode(tt.err))
		})
	}
}
