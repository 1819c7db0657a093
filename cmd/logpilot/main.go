package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/logpilot/internal"
	"github.com/rios0rios0/logpilot/internal/infrastructure/controllers"
)

func buildRootCommand(menuController *controllers.MenuController) *cobra.Command {
	bind := menuController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	return &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          menuController.Execute,
	}
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, arguments []string) error {
				return controller.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if ic, ok := controller.(*controllers.InstallController); ok {
			ic.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext, err := injectAppContext()
	if err != nil {
		logger.Fatalf("Error building 'logpilot': %s", err)
	}

	cobraRoot := buildRootCommand(appContext.GetMenuController())
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'logpilot': %s", err)
	}
}
