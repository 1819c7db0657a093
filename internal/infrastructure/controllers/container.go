package controllers

import (
	"github.com/rios0rios0/logpilot/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewMenuController); err != nil {
		return err
	}
	if err := container.Provide(NewInstallController); err != nil {
		return err
	}
	if err := container.Provide(NewCheckController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the AppInternal.
func NewControllers(
	installController *InstallController,
	checkController *CheckController,
) *[]entities.Controller {
	return &[]entities.Controller{
		installController,
		checkController,
	}
}
