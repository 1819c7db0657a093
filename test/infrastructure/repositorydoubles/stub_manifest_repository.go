//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/logpilot/internal/domain/entities"
	"github.com/rios0rios0/logpilot/internal/domain/repositories"
)

// StubManifestRepository returns a fixed manifest.
type StubManifestRepository struct {
	Manifest entities.Manifest
	LoadErr  error
	// spy: paths requested
	LoadedPaths []string
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (s *StubManifestRepository) Load(path string) (entities.Manifest, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	return s.Manifest, s.LoadErr
}
