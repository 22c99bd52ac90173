package docker

import (
	"errors"
	"fmt"

	"github.com/docker/docker/client"
)

// ErrAPIClientNil is returned when a nil ContainerAPI is supplied.
var ErrAPIClientNil = errors.New("docker api client cannot be nil")

// GetDockerClient creates a Docker client using environment configuration
// (DOCKER_HOST, DOCKER_TLS_VERIFY, DOCKER_CERT_PATH).
func GetDockerClient() (client.APIClient, error) {
	dockerClient, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return dockerClient, nil
}

// Compile-time check that the full SDK client satisfies the narrowed interface.
var _ ContainerAPI = (client.APIClient)(nil)
