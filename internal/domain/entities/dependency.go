package entities

import "strings"

// Dependency represents one package listed in the analyzer's manifest.
type Dependency struct {
	Name     string // Package name as known to the package manager
	Floor    string // Minimum accepted version, empty when unpinned
	Spec     string // Requirement passed verbatim to the package manager
	Platform string // GOOS this package is restricted to, empty for all
	Optional bool   // Install failure is tolerated
}

// AppliesTo reports whether the dependency should be installed on the given GOOS.
func (d Dependency) AppliesTo(goos string) bool {
	return d.Platform == "" || strings.EqualFold(d.Platform, goos)
}

// Manifest is the static list of packages the analyzer needs.
type Manifest struct {
	Source       string
	Dependencies []Dependency
}

// Mandatory returns the dependencies whose failure aborts setup.
func (m Manifest) Mandatory() []Dependency {
	result := make([]Dependency, 0, len(m.Dependencies))
	for _, dep := range m.Dependencies {
		if !dep.Optional {
			result = append(result, dep)
		}
	}
	return result
}

// Optional returns the dependencies whose failure is only logged.
func (m Manifest) Optional() []Dependency {
	result := make([]Dependency, 0)
	for _, dep := range m.Dependencies {
		if dep.Optional {
			result = append(result, dep)
		}
	}
	return result
}

// Specs returns the requirement strings of the given dependencies.
func Specs(deps []Dependency) []string {
	specs := make([]string, 0, len(deps))
	for _, dep := range deps {
		specs = append(specs, dep.Spec)
	}
	return specs
}
