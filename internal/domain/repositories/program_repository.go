package repositories

import (
	"context"

	"github.com/rios0rios0/logpilot/internal/domain/entities"
)

// ProgramRepository launches external programs with the operator's terminal
// attached. Run blocks until the child exits.
type ProgramRepository interface {
	Run(ctx context.Context, program entities.Program) entities.ProgramResult
}
