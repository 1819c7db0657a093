package repositories

import "github.com/rios0rios0/logpilot/internal/domain/entities"

// ManifestRepository loads the dependency manifest.
type ManifestRepository interface {
	Load(path string) (entities.Manifest, error)
}
