package repositories

// ToolchainRepository finds binaries on the execution path.
type ToolchainRepository interface {
	// LookPath returns the absolute path of the first candidate found.
	// The error is non-nil when none of them is discoverable.
	LookPath(candidates ...string) (string, error)
}
