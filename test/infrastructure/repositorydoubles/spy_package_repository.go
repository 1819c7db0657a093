//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/logpilot/internal/domain/repositories"
)

// SpyPackageRepository implements repositories.PackageRepository as a configurable spy.
type SpyPackageRepository struct {
	// --- Install ---
	InstallErrs map[string]error // first spec of the call -> error
	// spy: calls received
	InstallCalls []InstallCall

	// --- InstalledVersion ---
	Versions map[string]string // package name -> installed version
	// spy: names queried
	QueriedNames []string
}

// InstallCall records a single invocation of Install.
type InstallCall struct {
	PackageManager string
	Specs          []string
	Upgrade        bool
}

var _ repositories.PackageRepository = (*SpyPackageRepository)(nil)

func (s *SpyPackageRepository) Install(
	_ context.Context,
	packageManager string,
	specs []string,
	upgrade bool,
) error {
	s.InstallCalls = append(s.InstallCalls, InstallCall{
		PackageManager: packageManager,
		Specs:          specs,
		Upgrade:        upgrade,
	})
	if len(specs) > 0 && s.InstallErrs != nil {
		return s.InstallErrs[specs[0]]
	}
	return nil
}

func (s *SpyPackageRepository) InstalledVersion(
	_ context.Context,
	_ string,
	name string,
) (string, error) {
	s.QueriedNames = append(s.QueriedNames, name)
	if version, ok := s.Versions[name]; ok {
		return version, nil
	}
	return "", fmt.Errorf("package %s not found", name)
}
