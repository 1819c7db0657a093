//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/logpilot/internal/domain/commands"
	"github.com/rios0rios0/logpilot/internal/domain/entities"
)

// StubInstallCommand is a stub implementation of commands.Install.
type StubInstallCommand struct {
	ExecuteCallCount int
	Report           *entities.InstallReport
	ExecuteErr       error
	LastOpts         commands.InstallOptions
}

var _ commands.Install = (*StubInstallCommand)(nil)

func (s *StubInstallCommand) Execute(
	_ context.Context,
	opts commands.InstallOptions,
) (*entities.InstallReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.Report == nil && s.ExecuteErr == nil {
		return &entities.InstallReport{}, nil
	}
	return s.Report, s.ExecuteErr
}
