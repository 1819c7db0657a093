//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/logpilot/internal/domain/commands"
)

// StubMenuCommand is a stub implementation of commands.Menu.
type StubMenuCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.MenuOptions
}

var _ commands.Menu = (*StubMenuCommand)(nil)

func (s *StubMenuCommand) Execute(_ context.Context, opts commands.MenuOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
