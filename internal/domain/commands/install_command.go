package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/logpilot/internal/domain/entities"
	"github.com/rios0rios0/logpilot/internal/domain/repositories"
)

var (
	// ErrRuntimeNotFound is returned when no runtime candidate is on PATH.
	ErrRuntimeNotFound = errors.New("runtime not found")
	// ErrPackageManagerNotFound is returned when no package manager candidate is on PATH.
	ErrPackageManagerNotFound = errors.New("package manager not found")
	// ErrMandatoryInstallFailed is returned when the mandatory install step fails.
	ErrMandatoryInstallFailed = errors.New("mandatory dependency install failed")
)

// Install is the interface for the dependency installer.
type Install interface {
	Execute(ctx context.Context, opts InstallOptions) (*entities.InstallReport, error)
}

// InstallOptions holds runtime options for the installer.
type InstallOptions struct {
	DryRun  bool
	Upgrade bool
}

// InstallCommand bootstraps the analyzer's runtime packages.
type InstallCommand struct {
	settings  *entities.Settings
	toolchain repositories.ToolchainRepository
	packages  repositories.PackageRepository
	manifests repositories.ManifestRepository
	host      repositories.HostRepository
}

// NewInstallCommand creates a new InstallCommand.
func NewInstallCommand(
	settings *entities.Settings,
	toolchain repositories.ToolchainRepository,
	packages repositories.PackageRepository,
	manifests repositories.ManifestRepository,
	host repositories.HostRepository,
) *InstallCommand {
	return &InstallCommand{
		settings:  settings,
		toolchain: toolchain,
		packages:  packages,
		manifests: manifests,
		host:      host,
	}
}

// Execute installs every mandatory package in a single package manager run,
// then tries each optional package that applies to this host. A mandatory
// failure aborts setup before any optional package is attempted.
func (it *InstallCommand) Execute(ctx context.Context, opts InstallOptions) (*entities.InstallReport, error) {
	runtime, packageManager, err := locateToolchain(it.toolchain, it.settings.Runtime)
	if err != nil {
		return nil, err
	}
	logger.Infof("Runtime: %s", runtime)
	logger.Infof("Package manager: %s", packageManager)

	manifest, err := it.manifests.Load(it.settings.ManifestPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load dependency manifest: %w", err)
	}
	logger.Infof("Loaded %d dependencies from %s", len(manifest.Dependencies), manifest.Source)

	report := &entities.InstallReport{Runtime: runtime, PackageManager: packageManager}

	it.installMandatory(ctx, report, packageManager, manifest.Mandatory(), opts)
	if report.MandatoryFailed() {
		logReport(report)
		failed := report.Failed()
		return report, fmt.Errorf("%w: %w", ErrMandatoryInstallFailed, failed[0].Err)
	}

	it.installOptional(ctx, report, packageManager, manifest.Optional(), opts)
	logReport(report)
	return report, nil
}

func (it *InstallCommand) installMandatory(
	ctx context.Context,
	report *entities.InstallReport,
	packageManager string,
	deps []entities.Dependency,
	opts InstallOptions,
) {
	if len(deps) == 0 {
		logger.Info("No mandatory dependencies listed")
		return
	}

	specs := entities.Specs(deps)
	if opts.DryRun {
		logger.Infof("[DRY RUN] Would run: %s install %s", packageManager, strings.Join(specs, " "))
		appendResults(report, deps, entities.OutcomePlanned, nil)
		return
	}

	logger.Infof("Installing %d mandatory dependencies...", len(deps))
	if err := it.packages.Install(ctx, packageManager, specs, opts.Upgrade); err != nil {
		logger.Errorf("Mandatory install failed: %v", err)
		appendResults(report, deps, entities.OutcomeFailed, err)
		return
	}
	appendResults(report, deps, entities.OutcomeInstalled, nil)
}

func (it *InstallCommand) installOptional(
	ctx context.Context,
	report *entities.InstallReport,
	packageManager string,
	deps []entities.Dependency,
	opts InstallOptions,
) {
	goos := it.host.OS()
	for _, dep := range deps {
		if !dep.AppliesTo(goos) {
			logger.Debugf("Skipping %s: only needed on %s", dep.Name, dep.Platform)
			appendResults(report, []entities.Dependency{dep}, entities.OutcomeSkipped, nil)
			continue
		}

		if opts.DryRun {
			logger.Infof("[DRY RUN] Would run: %s install %s", packageManager, dep.Spec)
			appendResults(report, []entities.Dependency{dep}, entities.OutcomePlanned, nil)
			continue
		}

		logger.Infof("Installing optional dependency %s...", dep.Name)
		if err := it.packages.Install(ctx, packageManager, []string{dep.Spec}, opts.Upgrade); err != nil {
			logger.Warnf("Optional dependency %s could not be installed (continuing): %v", dep.Name, err)
			appendResults(report, []entities.Dependency{dep}, entities.OutcomeFailed, err)
			continue
		}
		appendResults(report, []entities.Dependency{dep}, entities.OutcomeInstalled, nil)
	}
}

// locateToolchain finds the runtime and its package manager, returning an
// error that tells the operator what to install when either is missing.
func locateToolchain(
	toolchain repositories.ToolchainRepository,
	cfg entities.RuntimeConfig,
) (string, string, error) {
	runtime, err := toolchain.LookPath(cfg.Candidates...)
	if err != nil {
		return "", "", fmt.Errorf(
			"%w (tried %s): install Python 3 from https://www.python.org/downloads/ and make sure it is on PATH",
			ErrRuntimeNotFound, strings.Join(cfg.Candidates, ", "),
		)
	}

	packageManager, err := toolchain.LookPath(cfg.PackageManagers...)
	if err != nil {
		return "", "", fmt.Errorf(
			"%w (tried %s): run `%s -m ensurepip --upgrade` or install pip with your system package manager",
			ErrPackageManagerNotFound, strings.Join(cfg.PackageManagers, ", "), runtime,
		)
	}

	return runtime, packageManager, nil
}

func appendResults(
	report *entities.InstallReport,
	deps []entities.Dependency,
	outcome entities.InstallOutcome,
	err error,
) {
	for _, dep := range deps {
		report.Packages = append(report.Packages, entities.PackageResult{
			Dependency: dep,
			Outcome:    outcome,
			Err:        err,
		})
	}
}

func logReport(report *entities.InstallReport) {
	for _, p := range report.Packages {
		kind := "mandatory"
		if p.Dependency.Optional {
			kind = "optional"
		}

		switch p.Outcome {
		case entities.OutcomeFailed:
			if p.Dependency.Optional {
				logger.Warnf("  %s (%s): %s", p.Dependency.Name, kind, p.Outcome)
			} else {
				logger.Errorf("  %s (%s): %s", p.Dependency.Name, kind, p.Outcome)
			}
		default:
			logger.Infof("  %s (%s): %s", p.Dependency.Name, kind, p.Outcome)
		}
	}
}
