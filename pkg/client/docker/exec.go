package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
)

// ErrEmptyCommand is returned when Exec is called without a command.
var ErrEmptyCommand = errors.New("exec command cannot be empty")

// ExecResult holds the outcome of a command run inside a container.
type ExecResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Exec runs cmd inside the named container, waits for it to finish, and returns its
// exit code and output. A non-zero exit code is not an error.
func Exec(ctx context.Context, api ContainerAPI, name string, cmd []string) (ExecResult, error) {
	if api == nil {
		return ExecResult{}, ErrAPIClientNil
	}

	if len(cmd) == 0 {
		return ExecResult{}, ErrEmptyCommand
	}

	created, err := api.ContainerExecCreate(ctx, name, container.ExecOptions{
		Cmd:          cmd,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return ExecResult{}, fmt.Errorf("create exec in %s: %w", name, err)
	}

	attached, err := api.ContainerExecAttach(ctx, created.ID, container.ExecAttachOptions{})
	if err != nil {
		return ExecResult{}, fmt.Errorf("attach exec %s: %w", created.ID, err)
	}

	defer attached.Close()

	var stdout, stderr bytes.Buffer

	// StdCopy returns once the exec finished and the stream hit EOF.
	_, err = stdcopy.StdCopy(&stdout, &stderr, attached.Reader)
	if err != nil {
		return ExecResult{}, fmt.Errorf("read exec %s output: %w", created.ID, err)
	}

	inspect, err := api.ContainerExecInspect(ctx, created.ID)
	if err != nil {
		return ExecResult{}, fmt.Errorf("inspect exec %s: %w", created.ID, err)
	}

	return ExecResult{
		ExitCode: inspect.ExitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}
