//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/logpilot/internal/domain/commands"
)

// StubCheckCommand is a stub implementation of commands.Check.
type StubCheckCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
}

var _ commands.Check = (*StubCheckCommand)(nil)

func (s *StubCheckCommand) Execute(_ context.Context) error {
	s.ExecuteCallCount++
	return s.ExecuteErr
}
