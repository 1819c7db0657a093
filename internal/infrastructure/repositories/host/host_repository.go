package host

import (
	"os"
	"runtime"

	"github.com/rios0rios0/logpilot/internal/domain/repositories"
)

// LocalHostRepository describes the machine the binary runs on.
type LocalHostRepository struct{}

// NewLocalHostRepository creates a new LocalHostRepository.
func NewLocalHostRepository() repositories.HostRepository {
	return &LocalHostRepository{}
}

// OS returns runtime.GOOS.
func (h *LocalHostRepository) OS() string { return runtime.GOOS }

// IsElevated reports whether the process has administrator or root rights.
func (h *LocalHostRepository) IsElevated() bool { return isElevated() }

// Executable returns the path of the running binary.
func (h *LocalHostRepository) Executable() (string, error) { return os.Executable() }
