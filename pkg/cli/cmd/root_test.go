package cmd_test

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/devantler-tech/farmops/pkg/cli/cmd"
	"github.com/devantler-tech/farmops/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/farmops/pkg/client/docker"
	"github.com/devantler-tech/farmops/pkg/di"
	"github.com/devantler-tech/farmops/pkg/metrics"
	"github.com/devantler-tech/farmops/pkg/probe"
	"github.com/devantler-tech/farmops/pkg/utils/runner"
	"github.com/devantler-tech/farmops/pkg/utils/timer"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeRunner records command lines and answers by substring. An answer with a non-zero
// exit code fails the way ExecRunner does.
type fakeRunner struct {
	mu       sync.Mutex
	commands []string
	answers  map[string]runner.CommandResult
}

func (f *fakeRunner) Run(_ context.Context, command runner.Command) (runner.CommandResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	line := command.String()
	f.commands = append(f.commands, line)

	for fragment, answer := range f.answers {
		if strings.Contains(line, fragment) {
			if answer.ExitCode != 0 {
				return answer, fmt.Errorf("%w: %s: exit code %d", runner.ErrCommandFailed, command, answer.ExitCode)
			}

			return answer, nil
		}
	}

	return runner.CommandResult{}, nil
}

type fakePinger struct{}

func (fakePinger) Ping(context.Context) error  { return nil }
func (fakePinger) Close(context.Context) error { return nil }

// fixture is the set of fakes a test runtime resolves.
type fixture struct {
	api     *docker.MockContainerAPI
	runner  *fakeRunner
	dsns    []string
	dsnLock sync.Mutex
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	return &fixture{
		api:    docker.NewMockContainerAPI(t),
		runner: &fakeRunner{answers: map[string]runner.CommandResult{}},
	}
}

func (f *fixture) runtime() *di.Runtime {
	return di.New(func(injector di.Injector) error {
		do.Provide(injector, func(di.Injector) (timer.Timer, error) { return timer.New(), nil })
		do.Provide(injector, func(di.Injector) (*metrics.Recorder, error) { return metrics.NewRecorder(), nil })
		do.Provide(injector, func(di.Injector) (di.DockerFactory, error) {
			return func() (docker.ContainerAPI, error) { return f.api, nil }, nil
		})
		do.Provide(injector, func(di.Injector) (di.RunnerFactory, error) {
			return func(io.Writer, io.Writer) runner.CommandRunner { return f.runner }, nil
		})
		do.Provide(injector, func(di.Injector) (probe.Connector, error) {
			return func(_ context.Context, dsn string) (probe.Pinger, error) {
				f.dsnLock.Lock()
				defer f.dsnLock.Unlock()

				f.dsns = append(f.dsns, dsn)

				return fakePinger{}, nil
			}, nil
		})

		return nil
	})
}

// run executes farmops with args against the fixture and an empty config file.
func (f *fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "farmops.yaml")
	require.NoError(t, os.WriteFile(configPath, nil, 0o600))

	var out bytes.Buffer

	root := cmd.NewRootCmdWithRuntime(f.runtime())
	root.SetOut(&out)
	root.SetArgs(append([]string{"--config=" + configPath}, args...))

	err := cmd.Execute(context.Background(), root)

	return out.String(), err
}

func running(running bool) container.InspectResponse {
	status := "exited"
	if running {
		status = "running"
	}

	return container.InspectResponse{
		ContainerJSONBase: &container.ContainerJSONBase{
			State: &container.State{Running: running, Status: status},
		},
	}
}

func expectExec(t *testing.T, api *docker.MockContainerAPI, name string, exitCode int) {
	t.Helper()

	execID := "exec-" + name
	clientConn, serverConn := net.Pipe()
	t.Cleanup(func() { _ = serverConn.Close() })

	api.EXPECT().ContainerExecCreate(mock.Anything, name, mock.Anything).
		Return(container.ExecCreateResponse{ID: execID}, nil).Once()
	api.EXPECT().ContainerExecAttach(mock.Anything, execID, mock.Anything).
		Return(types.HijackedResponse{Conn: clientConn, Reader: bufio.NewReader(&bytes.Buffer{})}, nil).Once()
	api.EXPECT().ContainerExecInspect(mock.Anything, execID).
		Return(container.ExecInspect{ExitCode: exitCode}, nil).Once()
}

func siteServer(t *testing.T, code int) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestMain(m *testing.M) {
	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

func TestNewRootCmdVersionFormatting(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("1.2.3", "abc123", "2026-10-01")

	assert.Equal(t, "1.2.3 (Built on 2026-10-01 from Git SHA abc123)", root.Version)
}

func TestExecuteShowsHelp(t *testing.T) {
	t.Parallel()

	out, err := newFixture(t).run(t)

	require.NoError(t, err)

	for _, sub := range []string{"wait", "install", "validate"} {
		assert.Contains(t, out, sub)
	}

	snaps.MatchSnapshot(t, out)
}

func TestWaitHelpListsProbes(t *testing.T) {
	t.Parallel()

	out, err := newFixture(t).run(t, "wait", "--help")

	require.NoError(t, err)
	snaps.MatchSnapshot(t, out)
}

func TestExecuteShowsVersion(t *testing.T) {
	t.Parallel()

	out, err := newFixture(t).run(t, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "test (Built on unknown from Git SHA none)")
}

func TestExecuteRejectsUnknownOutput(t *testing.T) {
	t.Parallel()

	_, err := newFixture(t).run(t, "--output=yaml", "wait", "container", "web")

	require.Error(t, err)
	assert.Equal(t, errorhandler.ExitFailure, errorhandler.ExitCode(err))
}
