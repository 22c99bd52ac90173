package docker

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
)

// ContainerAPI is the subset of client.APIClient used by readiness probes.
type ContainerAPI interface {
	ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error)
	ContainerExecCreate(
		ctx context.Context,
		containerID string,
		options container.ExecOptions,
	) (container.ExecCreateResponse, error)
	ContainerExecAttach(
		ctx context.Context,
		execID string,
		options container.ExecAttachOptions,
	) (types.HijackedResponse, error)
	ContainerExecInspect(ctx context.Context, execID string) (container.ExecInspect, error)
}

// Errors for container inspection.
var (
	// ErrContainerNotFound is returned when the container does not exist.
	ErrContainerNotFound = errors.New("container not found")
	// ErrNoNetworkSettings is returned when a container has no network configuration.
	ErrNoNetworkSettings = errors.New("container has no network settings")
	// ErrNoPortMapping is returned when a container port is not published on the host.
	ErrNoPortMapping = errors.New("container port is not published")
)

// ContainerState describes whether a container exists and is running.
type ContainerState struct {
	Exists  bool
	Running bool
	// Status is the Docker status string, e.g. "running", "exited" or "restarting".
	Status   string
	ExitCode int
}

// InspectState returns the state of the named container. A missing container is not an
// error: it is reported as Exists=false.
func InspectState(ctx context.Context, api ContainerAPI, name string) (ContainerState, error) {
	if api == nil {
		return ContainerState{}, ErrAPIClientNil
	}

	inspect, err := api.ContainerInspect(ctx, name)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return ContainerState{}, nil
		}

		return ContainerState{}, fmt.Errorf("inspect container %s: %w", name, err)
	}

	state := ContainerState{Exists: true}

	if inspect.ContainerJSONBase != nil && inspect.State != nil {
		state.Running = inspect.State.Running
		state.Status = inspect.State.Status
		state.ExitCode = inspect.State.ExitCode
	}

	return state, nil
}

// PublishedAddress returns the host address ("host:port") that the given container
// TCP port is published on. Wildcard host IPs are rewritten to 127.0.0.1.
func PublishedAddress(
	ctx context.Context,
	api ContainerAPI,
	name string,
	containerPort int,
) (string, error) {
	if api == nil {
		return "", ErrAPIClientNil
	}

	inspect, err := api.ContainerInspect(ctx, name)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return "", fmt.Errorf("%w: %s", ErrContainerNotFound, name)
		}

		return "", fmt.Errorf("inspect container %s: %w", name, err)
	}

	if inspect.NetworkSettings == nil {
		return "", fmt.Errorf("%w: %s", ErrNoNetworkSettings, name)
	}

	portKey := nat.Port(strconv.Itoa(containerPort) + "/tcp")

	bindings, ok := inspect.NetworkSettings.Ports[portKey]
	if !ok || len(bindings) == 0 {
		return "", fmt.Errorf("%w: container %s, port %s", ErrNoPortMapping, name, portKey)
	}

	hostIP := bindings[0].HostIP
	if hostIP == "" || hostIP == "0.0.0.0" || hostIP == "::" {
		hostIP = "127.0.0.1"
	}

	return net.JoinHostPort(hostIP, bindings[0].HostPort), nil
}
