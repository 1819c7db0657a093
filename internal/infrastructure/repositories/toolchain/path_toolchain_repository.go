package toolchain

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rios0rios0/logpilot/internal/domain/entities"
	"github.com/rios0rios0/logpilot/internal/domain/repositories"
)

// PathToolchainRepository resolves binaries through PATH, then through the
// directories listed under runtime.search_dirs, if any.
type PathToolchainRepository struct {
	searchDirs []string
}

// NewPathToolchainRepository creates a resolver honouring the configured search directories.
// With none configured, only PATH is consulted.
func NewPathToolchainRepository(settings *entities.Settings) repositories.ToolchainRepository {
	return NewPathToolchainRepositoryWithSearchDirs(settings.Runtime.SearchDirs)
}

// NewPathToolchainRepositoryWithSearchDirs creates a resolver with explicit extra directories.
func NewPathToolchainRepositoryWithSearchDirs(dirs []string) *PathToolchainRepository {
	return &PathToolchainRepository{searchDirs: dirs}
}

// LookPath returns the first candidate found, trying all of PATH before any search directory.
func (r *PathToolchainRepository) LookPath(candidates ...string) (string, error) {
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	for _, dir := range r.searchDirs {
		for _, name := range candidates {
			p := filepath.Join(dir, executableName(name))
			if info, statErr := os.Stat(p); statErr == nil && !info.IsDir() {
				return p, nil
			}
		}
	}

	if len(r.searchDirs) == 0 {
		return "", fmt.Errorf("none of %s found on PATH", strings.Join(candidates, ", "))
	}
	return "", fmt.Errorf("none of %s found on PATH or in %s",
		strings.Join(candidates, ", "), strings.Join(r.searchDirs, ", "))
}

func executableName(name string) string {
	if runtime.GOOS == "windows" && filepath.Ext(name) == "" {
		return name + ".exe"
	}
	return name
}
