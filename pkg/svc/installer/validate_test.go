package installer_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/devantler-tech/farmops/pkg/client/docker"
	"github.com/devantler-tech/farmops/pkg/svc/installer"
	"github.com/devantler-tech/farmops/pkg/utils/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drushAnswers(version, modules string) *fakeRunner {
	fake := newFakeRunner()
	fake.on("drupal-version", func() (runner.CommandResult, error) {
		return runner.CommandResult{Stdout: version + "\n"}, nil
	})
	fake.on("pm:list", func() (runner.CommandResult, error) {
		return runner.CommandResult{Stdout: modules}, nil
	})

	return fake
}

func TestValidate_Healthy(t *testing.T) {
	t.Parallel()

	server := siteServer(t, http.StatusOK)
	fake := drushAnswers("10.3.1", "farm\nfarm_land\nviews\n")

	var out bytes.Buffer

	err := newInstaller(t, testConfig(server.URL), docker.NewMockContainerAPI(t), fake, &out).
		Validate(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "✔ site responds\n")
	assert.Contains(t, out.String(), "✔ drupal version\n")
	assert.Contains(t, out.String(), "✔ farm module enabled\n")
}

func TestValidate_ReportsEveryFailure(t *testing.T) {
	t.Parallel()

	server := siteServer(t, http.StatusServiceUnavailable)
	fake := drushAnswers("9.5.11", "farm_land\nviews\n")

	var out bytes.Buffer

	err := newInstaller(t, testConfig(server.URL), docker.NewMockContainerAPI(t), fake, &out).
		Validate(context.Background())

	require.ErrorIs(t, err, installer.ErrValidationFailed)
	require.ErrorIs(t, err, installer.ErrSiteUnreachable)
	require.ErrorIs(t, err, installer.ErrDrupalVersion)
	require.ErrorIs(t, err, installer.ErrFarmNotEnabled)
	assert.Contains(t, out.String(), "✗ drupal version: ")
}

func TestValidate_CustomConstraint(t *testing.T) {
	t.Parallel()

	server := siteServer(t, http.StatusOK)
	cfg := testConfig(server.URL)
	cfg.Site.DrupalConstraint = "^11"

	var out bytes.Buffer

	err := newInstaller(t, cfg, docker.NewMockContainerAPI(t), drushAnswers("10.3.1", "farm"), &out).
		Validate(context.Background())

	require.ErrorIs(t, err, installer.ErrDrupalVersion)
}

func TestValidate_UnparsableVersion(t *testing.T) {
	t.Parallel()

	server := siteServer(t, http.StatusOK)

	var out bytes.Buffer

	err := newInstaller(t, testConfig(server.URL), docker.NewMockContainerAPI(t), drushAnswers("unknown", "farm"), &out).
		Validate(context.Background())

	require.ErrorIs(t, err, installer.ErrValidationFailed)
	assert.Contains(t, err.Error(), `parse drupal version "unknown"`)
}
