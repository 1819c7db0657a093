package internal

import (
	"github.com/rios0rios0/logpilot/internal/domain/entities"
	"github.com/rios0rios0/logpilot/internal/infrastructure/controllers"
)

// AppInternal holds the entrypoints the CLI is assembled from.
type AppInternal struct {
	menuController *controllers.MenuController
	controllers    []entities.Controller
}

// NewAppInternal creates a new AppInternal.
func NewAppInternal(
	menuController *controllers.MenuController,
	subcommands *[]entities.Controller,
) *AppInternal {
	return &AppInternal{
		menuController: menuController,
		controllers:    *subcommands,
	}
}

// GetMenuController returns the controller bound to the root command.
func (it *AppInternal) GetMenuController() *controllers.MenuController {
	return it.menuController
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
