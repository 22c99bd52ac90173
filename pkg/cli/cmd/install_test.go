package cmd_test

import (
	"net/http"
	"testing"

	"github.com/devantler-tech/farmops/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/farmops/pkg/svc/installer"
	"github.com/devantler-tech/farmops/pkg/utils/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	t.Parallel()

	server := siteServer(t, http.StatusOK)
	fx := newFixture(t)
	expectExec(t, fx.api, "farmos-db-1", 0)
	expectExec(t, fx.api, "farmos-www-1", 0)

	out, err := fx.run(t, "install", "--site-url", server.URL, "--project-dir", "/srv/farmos")

	require.NoError(t, err)
	assert.Contains(t, fx.runner.commands, "docker compose -f docker-compose.yml up -d")
	assert.Contains(t, out, "🚜 Installing farmOS...")
	assert.Contains(t, out, "✔ farmOS installed")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     int
		modules  string
		wantCode int
	}{
		{name: "healthy", code: http.StatusOK, modules: "farm\nviews\n", wantCode: errorhandler.ExitOK},
		{name: "farm disabled", code: http.StatusOK, modules: "views\n", wantCode: errorhandler.ExitFailure},
		{name: "site down", code: http.StatusBadGateway, modules: "farm\n", wantCode: errorhandler.ExitFailure},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := siteServer(t, testCase.code)
			fx := newFixture(t)
			fx.runner.answers["drupal-version"] = runner.CommandResult{Stdout: "10.3.1\n"}
			fx.runner.answers["pm:list"] = runner.CommandResult{Stdout: testCase.modules}

			out, err := fx.run(t, "validate", "--site-url", server.URL)

			assert.Equal(t, testCase.wantCode, errorhandler.ExitCode(err))
			assert.Contains(t, out, "🔍 Validating farmOS...")

			if testCase.wantCode != errorhandler.ExitOK {
				require.ErrorIs(t, err, installer.ErrValidationFailed)
			}
		})
	}
}
