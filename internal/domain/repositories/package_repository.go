package repositories

import "context"

// PackageRepository abstracts the runtime's package manager.
type PackageRepository interface {
	// Install runs the package manager once for all specs.
	Install(ctx context.Context, packageManager string, specs []string, upgrade bool) error

	// InstalledVersion returns the installed version of a package, or an
	// error when it is not installed.
	InstalledVersion(ctx context.Context, packageManager, name string) (string, error)
}
