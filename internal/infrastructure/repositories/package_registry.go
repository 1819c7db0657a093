package repositories

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	domainRepos "github.com/rios0rios0/logpilot/internal/domain/repositories"
)

// PackageRegistry routes package operations to the driver registered for
// the package manager binary in use.
type PackageRegistry struct {
	drivers map[string]domainRepos.PackageRepository
}

var _ domainRepos.PackageRepository = (*PackageRegistry)(nil)

// NewPackageRegistry creates an empty package registry.
func NewPackageRegistry() *PackageRegistry {
	return &PackageRegistry{
		drivers: make(map[string]domainRepos.PackageRepository),
	}
}

// Register adds a driver under a package manager name (e.g. "pip3").
func (r *PackageRegistry) Register(name string, driver domainRepos.PackageRepository) {
	r.drivers[name] = driver
}

// Get returns the driver for a package manager path or name, or nil if not registered.
func (r *PackageRegistry) Get(packageManager string) domainRepos.PackageRepository {
	return r.drivers[managerName(packageManager)]
}

// Names returns the sorted list of registered package manager names.
func (r *PackageRegistry) Names() []string {
	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Install delegates to the driver for packageManager.
func (r *PackageRegistry) Install(ctx context.Context, packageManager string, specs []string, upgrade bool) error {
	driver, err := r.lookup(packageManager)
	if err != nil {
		return err
	}
	return driver.Install(ctx, packageManager, specs, upgrade)
}

// InstalledVersion delegates to the driver for packageManager.
func (r *PackageRegistry) InstalledVersion(ctx context.Context, packageManager, name string) (string, error) {
	driver, err := r.lookup(packageManager)
	if err != nil {
		return "", err
	}
	return driver.InstalledVersion(ctx, packageManager, name)
}

func (r *PackageRegistry) lookup(packageManager string) (domainRepos.PackageRepository, error) {
	driver := r.Get(packageManager)
	if driver == nil {
		return nil, fmt.Errorf("unsupported package manager %q (known: %s)",
			packageManager, strings.Join(r.Names(), ", "))
	}
	return driver, nil
}

// managerName reduces "/usr/bin/pip3" or "C:\...\pip.exe" to "pip3" / "pip".
func managerName(packageManager string) string {
	base := filepath.Base(packageManager)
	return strings.TrimSuffix(strings.ToLower(base), ".exe")
}
