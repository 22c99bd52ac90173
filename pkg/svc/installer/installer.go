package installer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/devantler-tech/farmops/pkg/client/docker"
	"github.com/devantler-tech/farmops/pkg/config"
	"github.com/devantler-tech/farmops/pkg/probe"
	"github.com/devantler-tech/farmops/pkg/svc/waiter"
	"github.com/devantler-tech/farmops/pkg/utils/notify"
	"github.com/devantler-tech/farmops/pkg/utils/runner"
	"github.com/devantler-tech/farmops/pkg/utils/timer"
)

const wwwHTTPPort = 80

// ErrValidationFailed is returned by Validate when at least one check failed.
var ErrValidationFailed = errors.New("farmOS validation failed")

// Installer installs and validates a farmOS site.
type Installer interface {
	// Install brings the stack up and installs the site.
	Install(ctx context.Context) error
	// Validate checks a running site.
	Validate(ctx context.Context) error
}

// FarmOSInstaller implements Installer against a Docker Compose project.
type FarmOSInstaller struct {
	cfg    config.Config
	docker docker.ContainerAPI
	runner runner.CommandRunner
	waiter *waiter.Waiter
	http   probe.HTTPDoer
	out    io.Writer
	timer  timer.Timer
}

// Option configures a FarmOSInstaller.
type Option func(*FarmOSInstaller)

// WithOutput sets the writer for stage titles and step results.
func WithOutput(out io.Writer) Option {
	return func(i *FarmOSInstaller) {
		if out != nil {
			i.out = out
		}
	}
}

// WithTimer prints stage and total durations after each step.
func WithTimer(tmr timer.Timer) Option {
	return func(i *FarmOSInstaller) {
		i.timer = tmr
	}
}

// NewFarmOSInstaller wires an installer. The waiter carries the wait configuration and
// reporting; the runner executes docker compose on the host.
func NewFarmOSInstaller(
	cfg config.Config,
	api docker.ContainerAPI,
	cmdRunner runner.CommandRunner,
	wait *waiter.Waiter,
	opts ...Option,
) *FarmOSInstaller {
	inst := &FarmOSInstaller{
		cfg:    cfg,
		docker: api,
		runner: cmdRunner,
		waiter: wait,
		http:   probe.NewHTTPClient(cfg.HTTP.Timeout),
		out:    io.Discard,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

var _ Installer = (*FarmOSInstaller)(nil)

// SiteURL returns the site URL for this installer's project.
func (i *FarmOSInstaller) SiteURL(ctx context.Context) (string, error) {
	return ResolveSiteURL(ctx, i.docker, i.cfg.Project)
}

// ResolveSiteURL returns project.SiteURL, or derives it from the host port the www
// container publishes for 80/tcp when it is empty.
func ResolveSiteURL(ctx context.Context, api docker.ContainerAPI, project config.ProjectConfig) (string, error) {
	if project.SiteURL != "" {
		return project.SiteURL, nil
	}

	addr, err := docker.PublishedAddress(ctx, api, project.WWWContainer, wwwHTTPPort)
	if err != nil {
		return "", fmt.Errorf("resolve site url: %w", err)
	}

	return "http://" + addr, nil
}

// compose builds a docker compose invocation in the project directory.
func (i *FarmOSInstaller) compose(args ...string) runner.Command {
	base := []string{"compose", "-f", i.cfg.Project.ComposeFile}

	return runner.Command{
		Dir:  i.cfg.Project.Dir,
		Name: "docker",
		Args: append(base, args...),
	}
}

// www builds a non-interactive exec in the www service.
func (i *FarmOSInstaller) www(args ...string) runner.Command {
	return i.compose(append([]string{"exec", "-T", "www"}, args...)...)
}

// run echoes and executes cmd. Both the echo and the error carry the masked form of
// the command line.
func (i *FarmOSInstaller) run(ctx context.Context, cmd runner.Command) (runner.CommandResult, error) {
	notify.Activityf(i.out, "%s", cmd)

	result, err := i.runner.Run(ctx, cmd)
	if err != nil {
		return result, fmt.Errorf("%s: %w", cmd, err)
	}

	return result, nil
}
