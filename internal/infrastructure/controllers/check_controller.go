package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/logpilot/internal/domain/commands"
	"github.com/rios0rios0/logpilot/internal/domain/entities"
)

// CheckController handles the "check" subcommand.
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check",
		Short: "Verify the host can run the analyzer",
		Long: `Verify, without installing anything, that Python and pip are on PATH,
that every required package is installed at or above its minimum version,
and report whether the session has administrator rights.`,
	}
}

// Execute runs the readiness check.
func (it *CheckController) Execute(_ *cobra.Command, _ []string) error {
	return it.command.Execute(context.Background())
}
