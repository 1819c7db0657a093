package python

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/logpilot/internal/domain/repositories"
)

// ManagerNames are the package manager binaries this driver understands.
var ManagerNames = []string{"pip", "pip3"} //nolint:gochecknoglobals // registry keys

var errVersionNotReported = errors.New("package manager did not report a version")

// streamFunc runs a command with the operator's terminal attached.
type streamFunc func(ctx context.Context, env []string, name string, args ...string) error

// captureFunc runs a command and returns its combined output.
type captureFunc func(ctx context.Context, env []string, name string, args ...string) ([]byte, error)

// PipPackageRepository implements repositories.PackageRepository on top of pip.
type PipPackageRepository struct {
	stream  streamFunc
	capture captureFunc
}

// NewPipPackageRepository creates a pip driver that shells out to the real binary.
func NewPipPackageRepository() repositories.PackageRepository {
	return &PipPackageRepository{stream: execStream, capture: execCapture}
}

// Install runs `pip install [--upgrade] <specs...>` once.
func (r *PipPackageRepository) Install(
	ctx context.Context,
	packageManager string,
	specs []string,
	upgrade bool,
) error {
	args := buildInstallArgs(specs, upgrade)
	logger.Debugf("[pip] %s %s", packageManager, strings.Join(args, " "))

	if err := r.stream(ctx, buildEnv(), packageManager, args...); err != nil {
		return fmt.Errorf("%s install failed: %w", packageManager, err)
	}
	return nil
}

// InstalledVersion runs `pip show <name>` and reads its Version field.
func (r *PipPackageRepository) InstalledVersion(
	ctx context.Context,
	packageManager, name string,
) (string, error) {
	output, err := r.capture(ctx, buildEnv(), packageManager, "show", name)
	if err != nil {
		return "", fmt.Errorf("%s show %s: %w", packageManager, name, err)
	}
	return parseShowVersion(output)
}

func buildInstallArgs(specs []string, upgrade bool) []string {
	args := []string{"install"}
	if upgrade {
		args = append(args, "--upgrade")
	}
	return append(args, specs...)
}

// parseShowVersion extracts the "Version:" field of `pip show` output.
func parseShowVersion(output []byte) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), ":")
		if found && strings.EqualFold(strings.TrimSpace(key), "version") {
			if version := strings.TrimSpace(value); version != "" {
				return version, nil
			}
		}
	}
	return "", errVersionNotReported
}

// buildEnv keeps pip quiet about its own upgrades.
func buildEnv() []string {
	return append(os.Environ(), "PIP_DISABLE_PIP_VERSION_CHECK=1")
}

func execStream(ctx context.Context, env []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func execCapture(ctx context.Context, env []string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = env
	return cmd.CombinedOutput()
}
