package repositories

import (
	domainRepos "github.com/rios0rios0/logpilot/internal/domain/repositories"
	hostRepo "github.com/rios0rios0/logpilot/internal/infrastructure/repositories/host"
	processRepo "github.com/rios0rios0/logpilot/internal/infrastructure/repositories/process"
	pyRepo "github.com/rios0rios0/logpilot/internal/infrastructure/repositories/python"
	reqRepo "github.com/rios0rios0/logpilot/internal/infrastructure/repositories/requirements"
	toolchainRepo "github.com/rios0rios0/logpilot/internal/infrastructure/repositories/toolchain"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register package registry with every known package manager driver
	if err := container.Provide(func() domainRepos.PackageRepository {
		reg := NewPackageRegistry()
		pip := pyRepo.NewPipPackageRepository()
		for _, name := range pyRepo.ManagerNames {
			reg.Register(name, pip)
		}
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(processRepo.NewExecProgramRepository); err != nil {
		return err
	}
	if err := container.Provide(toolchainRepo.NewPathToolchainRepository); err != nil {
		return err
	}
	if err := container.Provide(reqRepo.NewRequirementsManifestRepository); err != nil {
		return err
	}
	if err := container.Provide(hostRepo.NewLocalHostRepository); err != nil {
		return err
	}

	return nil
}
