package installer

import "context"

// ComposerInstall exposes the composer step to external tests.
func (i *FarmOSInstaller) ComposerInstall(ctx context.Context) error {
	return i.composerInstall(ctx)
}
