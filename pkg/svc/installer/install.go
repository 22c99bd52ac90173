package installer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devantler-tech/farmops/pkg/utils/notify"
	"github.com/devantler-tech/farmops/pkg/utils/runner"
	"github.com/siderolabs/go-retry/retry"
)

// ErrComposerInstall is returned once composer install has failed on every attempt.
var ErrComposerInstall = errors.New("composer install failed")

// composerAttemptBudget bounds one composer install run; the retry budget is sized
// from it so the attempt count, not the clock, decides when to give up.
const composerAttemptBudget = 30 * time.Minute

type step struct {
	title string
	emoji string
	run   func(ctx context.Context) error
}

func (i *FarmOSInstaller) steps() []step {
	return []step{
		{title: "Starting containers", emoji: "🐳", run: i.composeUp},
		{title: "Waiting for database", emoji: "🐘", run: i.waitDatabase},
		{title: "Waiting for www", emoji: "⏳", run: i.waitWWW},
		{title: "Installing dependencies", emoji: "📦", run: i.composerInstall},
		{title: "Installing farmOS", emoji: "🚜", run: i.siteInstall},
		{title: "Rebuilding caches", emoji: "🧹", run: i.cacheRebuild},
		{title: "Waiting for site", emoji: "🌐", run: i.waitSite},
	}
}

// Install runs every step in order and stops at the first failure.
func (i *FarmOSInstaller) Install(ctx context.Context) error {
	if i.timer != nil {
		i.timer.Start()
	}

	for _, st := range i.steps() {
		if i.timer != nil {
			i.timer.NewStage()
		}

		notify.Titlef(i.out, st.emoji, "%s...", st.title)

		err := st.run(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", st.title, err)
		}
	}

	notify.SuccessWithTimerf(i.out, i.timer, "farmOS installed")

	return nil
}

func (i *FarmOSInstaller) composeUp(ctx context.Context) error {
	_, err := i.run(ctx, i.compose("up", "-d"))

	return err
}

func (i *FarmOSInstaller) waitDatabase(ctx context.Context) error {
	_, err := i.waiter.Wait(ctx, DatabaseTarget(i.docker, i.cfg.Project.DBContainer))

	return err //nolint:wrapcheck // already prefixed with the container name
}

func (i *FarmOSInstaller) waitWWW(ctx context.Context) error {
	_, err := i.waiter.Wait(ctx, WWWTarget(i.docker, i.cfg.Project.WWWContainer))

	return err //nolint:wrapcheck // already prefixed with the container name
}

// composerInstall retries failed runs at a constant interval. A command that cannot be
// started at all is not retried.
func (i *FarmOSInstaller) composerInstall(ctx context.Context) error {
	attempts := i.cfg.Composer.Retries + 1
	interval := i.cfg.Composer.RetryInterval
	budget := (interval + composerAttemptBudget) * time.Duration(attempts)

	var (
		attempt int
		lastErr error
	)

	err := retry.Constant(budget, retry.WithUnits(interval)).RetryWithContext(ctx, func(ctx context.Context) error {
		attempt++

		_, runErr := i.run(ctx, i.www("composer", "install", "--no-interaction"))
		if runErr == nil {
			return nil
		}

		lastErr = runErr

		if !errors.Is(runErr, runner.ErrCommandFailed) || attempt >= attempts {
			return runErr
		}

		notify.Warningf(i.out, "composer install failed (attempt %d of %d), retrying in %s", attempt, attempts, interval)

		return retry.ExpectedError(runErr)
	})
	if err != nil {
		if lastErr == nil {
			lastErr = err
		}

		return fmt.Errorf("%w after %d attempt(s): %w", ErrComposerInstall, attempt, lastErr)
	}

	return nil
}

func (i *FarmOSInstaller) siteInstall(ctx context.Context) error {
	site := i.cfg.Site

	cmd := i.www(
		"drush", "site:install", "farm", "-y",
		"--db-url="+i.cfg.Database.InstallURL,
		"--site-name="+site.Name,
		"--account-name="+site.AccountName,
		"--account-pass="+site.AccountPass,
	)
	cmd.SecretFlags = []string{"--account-pass"}

	_, err := i.run(ctx, cmd)

	return err
}

func (i *FarmOSInstaller) cacheRebuild(ctx context.Context) error {
	_, err := i.run(ctx, i.www("drush", "cache:rebuild"))

	return err
}

func (i *FarmOSInstaller) waitSite(ctx context.Context) error {
	siteURL, err := i.SiteURL(ctx)
	if err != nil {
		return err
	}

	notify.Infof(i.out, "site url %s", siteURL)

	target, err := SiteTarget(i.http, i.docker, i.cfg.Project.WWWContainer, siteURL, i.cfg.HTTP.AcceptStatus)
	if err != nil {
		return err
	}

	_, err = i.waiter.Wait(ctx, target)

	return err //nolint:wrapcheck // already prefixed with the site url
}
