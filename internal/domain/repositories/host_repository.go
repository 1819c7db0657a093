package repositories

// HostRepository exposes facts about the machine logpilot runs on.
type HostRepository interface {
	// OS returns the GOOS-style operating system family.
	OS() string

	// IsElevated reports whether the process has administrator or root rights.
	IsElevated() bool

	// Executable returns the path of the running logpilot binary.
	Executable() (string, error)
}
