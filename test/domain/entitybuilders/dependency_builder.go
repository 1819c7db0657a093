//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/logpilot/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	name     string
	floor    string
	spec     string
	platform string
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "python-docx",
		floor:       "0.8.11",
	}
}

// WithName sets the package name.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	return b
}

// WithFloor sets the minimum version.
func (b *DependencyBuilder) WithFloor(floor string) *DependencyBuilder {
	b.floor = floor
	return b
}

// WithSpec overrides the requirement string; by default it is derived from name and floor.
func (b *DependencyBuilder) WithSpec(spec string) *DependencyBuilder {
	b.spec = spec
	return b
}

// WithPlatform restricts the dependency to a GOOS, which makes it optional.
func (b *DependencyBuilder) WithPlatform(goos string) *DependencyBuilder {
	b.platform = goos
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	spec := b.spec
	if spec == "" {
		spec = b.name
		if b.floor != "" {
			spec += ">=" + b.floor
		}
	}
	return entities.Dependency{
		Name:     b.name,
		Floor:    b.floor,
		Spec:     spec,
		Platform: b.platform,
		Optional: b.platform != "",
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "python-docx"
	b.floor = "0.8.11"
	b.spec = ""
	b.platform = ""
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		floor:       b.floor,
		spec:        b.spec,
		platform:    b.platform,
	}
}
