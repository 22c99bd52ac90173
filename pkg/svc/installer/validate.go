package installer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/devantler-tech/farmops/pkg/readiness"
	"github.com/devantler-tech/farmops/pkg/probe"
	"github.com/devantler-tech/farmops/pkg/utils/notify"
)

// Validation errors.
var (
	ErrDrupalVersion   = errors.New("drupal version does not satisfy constraint")
	ErrFarmNotEnabled  = errors.New("farm module is not enabled")
	ErrSiteUnreachable = errors.New("site did not answer with an accepted status")
)

type check struct {
	name string
	run  func(ctx context.Context) error
}

// Validate runs every check, reports each result, and returns all failures joined
// under ErrValidationFailed.
func (i *FarmOSInstaller) Validate(ctx context.Context) error {
	notify.Titlef(i.out, "🔍", "Validating farmOS...")

	checks := []check{
		{name: "site responds", run: i.checkSite},
		{name: "drupal version", run: i.checkDrupalVersion},
		{name: "farm module enabled", run: i.checkFarmEnabled},
	}

	var errs []error

	for _, chk := range checks {
		err := chk.run(ctx)
		if err != nil {
			notify.Errorf(i.out, "%s: %v", chk.name, err)
			errs = append(errs, fmt.Errorf("%s: %w", chk.name, err))

			continue
		}

		notify.Successf(i.out, "%s", chk.name)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
	}

	return nil
}

// checkSite probes the site once; validation does not wait.
func (i *FarmOSInstaller) checkSite(ctx context.Context) error {
	siteURL, err := i.SiteURL(ctx)
	if err != nil {
		return err
	}

	httpProbe, err := probe.HTTP(i.http, siteURL, i.cfg.HTTP.AcceptStatus)
	if err != nil {
		return fmt.Errorf("build site probe: %w", err)
	}

	outcome := httpProbe(ctx)
	if outcome.Status != readiness.Succeeded {
		return fmt.Errorf("%w: %w", ErrSiteUnreachable, outcome.Err)
	}

	return nil
}

func (i *FarmOSInstaller) checkDrupalVersion(ctx context.Context) error {
	constraint, err := semver.NewConstraint(i.cfg.Site.DrupalConstraint)
	if err != nil {
		return fmt.Errorf("parse constraint %q: %w", i.cfg.Site.DrupalConstraint, err)
	}

	result, err := i.run(ctx, i.www("drush", "status", "--field=drupal-version"))
	if err != nil {
		return err
	}

	raw := strings.TrimSpace(result.Stdout)

	version, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("parse drupal version %q: %w", raw, err)
	}

	if !constraint.Check(version) {
		return fmt.Errorf("%w: %s does not match %s", ErrDrupalVersion, version, constraint)
	}

	return nil
}

func (i *FarmOSInstaller) checkFarmEnabled(ctx context.Context) error {
	result, err := i.run(ctx, i.www("drush", "pm:list", "--status=enabled", "--field=name"))
	if err != nil {
		return err
	}

	modules := strings.Fields(result.Stdout)
	if !slices.Contains(modules, "farm") {
		return ErrFarmNotEnabled
	}

	return nil
}
