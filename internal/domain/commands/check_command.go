package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-version"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/logpilot/internal/domain/entities"
	"github.com/rios0rios0/logpilot/internal/domain/repositories"
)

// Check is the interface for the host readiness check.
type Check interface {
	Execute(ctx context.Context) error
}

// CheckCommand verifies that the host can run the analyzer without changing anything.
type CheckCommand struct {
	settings  *entities.Settings
	toolchain repositories.ToolchainRepository
	packages  repositories.PackageRepository
	manifests repositories.ManifestRepository
	host      repositories.HostRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	settings *entities.Settings,
	toolchain repositories.ToolchainRepository,
	packages repositories.PackageRepository,
	manifests repositories.ManifestRepository,
	host repositories.HostRepository,
) *CheckCommand {
	return &CheckCommand{
		settings:  settings,
		toolchain: toolchain,
		packages:  packages,
		manifests: manifests,
		host:      host,
	}
}

// Execute runs every check and returns the mandatory failures combined.
// Warnings are logged only.
func (it *CheckCommand) Execute(ctx context.Context) error {
	var result *multierror.Error

	it.checkPrivileges()
	it.checkScripts()

	runtime, packageManager, err := locateToolchain(it.toolchain, it.settings.Runtime)
	if err != nil {
		logger.Errorf("[check] %v", err)
		return multierror.Append(result, err).ErrorOrNil()
	}
	logger.Infof("[check] runtime: OK (%s)", runtime)
	logger.Infof("[check] package manager: OK (%s)", packageManager)

	manifest, err := it.manifests.Load(it.settings.ManifestPath())
	if err != nil {
		return multierror.Append(result, fmt.Errorf("failed to load dependency manifest: %w", err)).ErrorOrNil()
	}

	goos := it.host.OS()
	for _, dep := range manifest.Dependencies {
		if !dep.AppliesTo(goos) {
			logger.Debugf("[check] %s: not needed on %s", dep.Name, goos)
			continue
		}

		if depErr := it.checkDependency(ctx, packageManager, dep); depErr != nil {
			if dep.Optional {
				logger.Warnf("[check] %v", depErr)
				continue
			}
			logger.Errorf("[check] %v", depErr)
			result = multierror.Append(result, depErr)
		}
	}

	if result.ErrorOrNil() == nil {
		logger.Info("[check] host is ready")
	}
	return result.ErrorOrNil()
}

func (it *CheckCommand) checkDependency(ctx context.Context, packageManager string, dep entities.Dependency) error {
	installed, err := it.packages.InstalledVersion(ctx, packageManager, dep.Name)
	if err != nil {
		return fmt.Errorf("%s is not installed: %w", dep.Name, err)
	}

	ok, err := meetsFloor(installed, dep.Floor)
	if err != nil {
		return fmt.Errorf("%s: cannot compare version %s with %s: %w", dep.Name, installed, dep.Floor, err)
	}
	if !ok {
		return fmt.Errorf("%s %s is older than the required %s", dep.Name, installed, dep.Floor)
	}

	logger.Infof("[check] %s: OK (%s)", dep.Name, installed)
	return nil
}

func (it *CheckCommand) checkPrivileges() {
	if it.host.IsElevated() {
		logger.Info("[check] administrator rights: yes")
		return
	}
	logger.Warn("[check] administrator rights: no (full access to system logs needs an elevated session)")
}

func (it *CheckCommand) checkScripts() {
	for _, item := range entities.MenuItems() {
		cfg, ok := it.settings.Programs[item.Action]
		if !ok || cfg.Script == "" || cfg.Command != "" {
			continue
		}
		path := cfg.Script
		if !filepath.IsAbs(path) {
			path = filepath.Join(it.settings.Workdir, path)
		}
		if _, err := os.Stat(path); err != nil {
			logger.Warnf("[check] %s script missing: %s", item.Action, path)
			continue
		}
		logger.Debugf("[check] %s script: OK (%s)", item.Action, path)
	}
}

// pythonVersionPattern splits a PEP 440 version into release, pre-release
// and dev parts. Post-release and local suffixes are matched and dropped.
var pythonVersionPattern = regexp.MustCompile(
	`^v?(\d+(?:\.\d+)*)` +
		`(?:[._-]?(a|alpha|b|beta|c|rc|pre|preview)[._-]?(\d*))?` +
		`(?:[._-]?(?:post|rev|r)[._-]?\d*|-\d+)?` +
		`(?:[._-]?(dev)[._-]?(\d*))?` +
		`(?:\+[a-z0-9._-]*)?$`,
)

// meetsFloor reports whether installed >= floor. An empty floor always
// passes. Plain semver goes through x/mod/semver; anything else is read as
// a Python package version.
func meetsFloor(installed, floor string) (bool, error) {
	if floor == "" {
		return true, nil
	}

	v1 := normalizeVersion(installed)
	v2 := normalizeVersion(floor)
	if semver.IsValid(v1) && semver.IsValid(v2) {
		return semver.Compare(v1, v2) >= 0, nil
	}

	current, err := parsePythonVersion(installed)
	if err != nil {
		return false, err
	}
	minimum, err := parsePythonVersion(floor)
	if err != nil {
		return false, err
	}
	return !current.LessThan(minimum), nil
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "v") {
		return raw
	}
	return "v" + raw
}

// parsePythonVersion maps "1.10rc1", "2.0.0.post1" or "1.0.dev3" onto
// go-version, keeping pre-releases and dev builds ordered below their release.
func parsePythonVersion(raw string) (*version.Version, error) {
	match := pythonVersionPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(raw)))
	if match == nil {
		return nil, fmt.Errorf("unrecognised version %q", raw)
	}

	normalized := match[1]
	switch {
	case match[2] != "":
		normalized += "-" + match[2] + match[3]
	case match[4] != "":
		normalized += "-dev" + match[5]
	}
	return version.NewVersion(normalized)
}
