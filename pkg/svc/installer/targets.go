package installer

import (
	"fmt"

	"github.com/devantler-tech/farmops/pkg/client/docker"
	"github.com/devantler-tech/farmops/pkg/probe"
	"github.com/devantler-tech/farmops/pkg/svc/waiter"
)

// DatabaseTarget is ready once pg_isready succeeds inside the db container.
func DatabaseTarget(api docker.ContainerAPI, name string) waiter.Target {
	return waiter.Target{
		Name:     name,
		Probe:    probe.Exec(api, name, "pg_isready"),
		Liveness: probe.ContainerLiveness(api, name),
	}
}

// WWWTarget is ready once PHP runs inside the www container.
func WWWTarget(api docker.ContainerAPI, name string) waiter.Target {
	return waiter.Target{
		Name:     name,
		Probe:    probe.Exec(api, name, "php", "-v"),
		Liveness: probe.ContainerLiveness(api, name),
	}
}

// SiteTarget is ready once siteURL answers with an accepted status. The wait ends early
// if the www container disappears.
func SiteTarget(
	client probe.HTTPDoer,
	api docker.ContainerAPI,
	wwwContainer, siteURL string,
	accepted []int,
) (waiter.Target, error) {
	httpProbe, err := probe.HTTP(client, siteURL, accepted)
	if err != nil {
		return waiter.Target{}, fmt.Errorf("build site probe: %w", err)
	}

	return waiter.Target{
		Name:     siteURL,
		Probe:    httpProbe,
		Liveness: probe.ContainerLiveness(api, wwwContainer),
	}, nil
}
