package entities

// InstallOutcome is the per-package result of an install pass.
type InstallOutcome string

const (
	OutcomeInstalled InstallOutcome = "installed"
	OutcomeFailed    InstallOutcome = "failed"
	OutcomeSkipped   InstallOutcome = "skipped"
	OutcomePlanned   InstallOutcome = "planned" // dry run
)

// PackageResult records what happened to a single dependency.
type PackageResult struct {
	Dependency Dependency
	Outcome    InstallOutcome
	Err        error
}

// InstallReport summarizes an install pass.
type InstallReport struct {
	Runtime        string
	PackageManager string
	Packages       []PackageResult
}

// Failed returns the packages whose install did not succeed.
func (r *InstallReport) Failed() []PackageResult {
	var failed []PackageResult
	for _, p := range r.Packages {
		if p.Outcome == OutcomeFailed {
			failed = append(failed, p)
		}
	}
	return failed
}

// MandatoryFailed reports whether any mandatory package failed.
func (r *InstallReport) MandatoryFailed() bool {
	for _, p := range r.Failed() {
		if !p.Dependency.Optional {
			return true
		}
	}
	return false
}
