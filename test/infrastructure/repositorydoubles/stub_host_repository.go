//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/logpilot/internal/domain/repositories"
)

// StubHostRepository reports fixed host facts.
type StubHostRepository struct {
	GOOS          string
	Elevated      bool
	SelfPath      string
	ExecutableErr error
}

var _ repositories.HostRepository = (*StubHostRepository)(nil)

func (s *StubHostRepository) OS() string { return s.GOOS }

func (s *StubHostRepository) IsElevated() bool { return s.Elevated }

func (s *StubHostRepository) Executable() (string, error) {
	return s.SelfPath, s.ExecutableErr
}
