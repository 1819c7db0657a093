package main

import (
	"github.com/rios0rios0/logpilot/internal"
	"go.uber.org/dig"
)

func injectAppContext() (*internal.AppInternal, error) {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		return nil, err
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		return nil, err
	}

	return appInternal, nil
}
