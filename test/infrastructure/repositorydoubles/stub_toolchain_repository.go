//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/logpilot/internal/domain/repositories"
)

// StubToolchainRepository resolves only the binaries listed in Paths.
type StubToolchainRepository struct {
	Paths map[string]string // name -> resolved path
	// spy: candidate lists that were looked up
	Lookups [][]string
}

var _ repositories.ToolchainRepository = (*StubToolchainRepository)(nil)

func (s *StubToolchainRepository) LookPath(candidates ...string) (string, error) {
	s.Lookups = append(s.Lookups, candidates)
	for _, name := range candidates {
		if path, ok := s.Paths[name]; ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("none of %v found", candidates)
}
