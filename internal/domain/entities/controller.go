package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra metadata a controller is mounted with.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is implemented by every CLI entrypoint.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
