//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/logpilot/internal/domain/entities"
	"github.com/rios0rios0/logpilot/internal/domain/repositories"
)

// SpyProgramRepository implements repositories.ProgramRepository as a configurable spy.
type SpyProgramRepository struct {
	// --- Run ---
	Result entities.ProgramResult
	// spy: programs launched, in order
	Launched []entities.Program
}

var _ repositories.ProgramRepository = (*SpyProgramRepository)(nil)

func (s *SpyProgramRepository) Run(_ context.Context, program entities.Program) entities.ProgramResult {
	s.Launched = append(s.Launched, program)
	return s.Result
}
