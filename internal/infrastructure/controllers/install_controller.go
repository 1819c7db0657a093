package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/logpilot/internal/domain/commands"
	"github.com/rios0rios0/logpilot/internal/domain/entities"
)

// InstallController handles the "install" subcommand.
type InstallController struct {
	command commands.Install
}

// NewInstallController creates a new InstallController.
func NewInstallController(command commands.Install) *InstallController {
	return &InstallController{command: command}
}

// GetBind returns the Cobra command metadata for the install controller.
func (it *InstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "install",
		Short: "Install the analyzer's runtime dependencies",
		Long: `Check that Python and pip are available, then install every package
listed in the dependency manifest with a single pip run.

Platform-specific packages (e.g. pywin32 on Windows) are attempted
afterwards; their failure is reported as a warning and does not change
the exit status.`,
	}
}

// Execute runs the installer. A missing runtime or a failed mandatory
// install is returned so the process exits non-zero.
func (it *InstallController) Execute(cmd *cobra.Command, _ []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	upgrade, _ := cmd.Flags().GetBool("upgrade")

	report, err := it.command.Execute(context.Background(), commands.InstallOptions{
		DryRun:  dryRun,
		Upgrade: upgrade,
	})
	if err != nil {
		return err
	}

	if dryRun {
		logger.Infof("Dry run finished: %d package(s) planned, nothing was installed", countPlanned(report))
		return nil
	}

	if failed := report.Failed(); len(failed) > 0 {
		logger.Warnf("Setup finished with %d optional package(s) missing", len(failed))
		return nil
	}
	logger.Info("Setup finished successfully")
	return nil
}

func countPlanned(report *entities.InstallReport) int {
	planned := 0
	for _, p := range report.Packages {
		if p.Outcome == entities.OutcomePlanned {
			planned++
		}
	}
	return planned
}

// AddFlags adds the install-specific flags to the given Cobra command.
func (it *InstallController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Show the package manager runs without executing them")
	cmd.Flags().Bool("upgrade", false, "Upgrade packages that are already installed")
}
