package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/logpilot/internal/domain/commands"
	"github.com/rios0rios0/logpilot/internal/domain/entities"
)

// MenuController handles the root command (interactive mode).
type MenuController struct {
	command commands.Menu
}

// NewMenuController creates a new MenuController.
func NewMenuController(command commands.Menu) *MenuController {
	return &MenuController{command: command}
}

// GetBind returns the Cobra command metadata for the menu controller.
func (it *MenuController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "logpilot",
		Short: "Launcher for the local system log analyzer",
		Long: `Interactive launcher for the local system log analyzer.

Pick an action from the menu: run the analysis, the demo, the readiness
check or the usage examples, or install the analyzer's dependencies.
Each action runs as a separate program with this terminal attached and
the menu comes back when it finishes.`,
	}
}

// Execute runs the menu loop on the command's standard streams.
func (it *MenuController) Execute(cmd *cobra.Command, _ []string) error {
	return it.command.Execute(context.Background(), commands.MenuOptions{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
	})
}
