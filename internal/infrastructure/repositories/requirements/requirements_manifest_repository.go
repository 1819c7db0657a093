package requirements

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/logpilot/internal/domain/entities"
	"github.com/rios0rios0/logpilot/internal/domain/repositories"
)

const embeddedSource = "<embedded>"

//go:embed default_requirements.txt
var defaultRequirements string

var (
	// namePattern captures the distribution name at the start of a requirement.
	namePattern = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9._-]*)`)
	// floorPattern captures the version after >= or ==.
	floorPattern = regexp.MustCompile(`(?:>=|==)\s*([^,;\s]+)`)
	// platformPattern captures sys_platform / platform_system equality markers.
	platformPattern = regexp.MustCompile(`(sys_platform|platform_system)\s*==\s*["']([^"']+)["']`)
	commentPattern  = regexp.MustCompile(`(^|\s)#.*$`)
)

// platformAliases maps marker values to GOOS.
var platformAliases = map[string]string{ //nolint:gochecknoglobals // lookup table
	"win32":   "windows",
	"cygwin":  "windows",
	"windows": "windows",
	"linux":   "linux",
	"darwin":  "darwin",
}

// RequirementsManifestRepository reads pip requirements files.
type RequirementsManifestRepository struct{}

// NewRequirementsManifestRepository creates a new RequirementsManifestRepository.
func NewRequirementsManifestRepository() repositories.ManifestRepository {
	return &RequirementsManifestRepository{}
}

// Load parses the file at path, falling back to the embedded manifest when
// the file does not exist.
func (r *RequirementsManifestRepository) Load(path string) (entities.Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debugf("Manifest %q not found, using the embedded one", path)
		return Parse(embeddedSource, defaultRequirements)
	}
	if err != nil {
		return entities.Manifest{}, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}
	return Parse(path, string(data))
}

// Parse builds a manifest from requirements-file content.
func Parse(source, content string) (entities.Manifest, error) {
	manifest := entities.Manifest{Source: source}
	seen := make(map[string]bool)

	for i, raw := range strings.Split(content, "\n") {
		line := stripComment(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") {
			logger.Debugf("%s:%d: ignoring option line %q", source, i+1, line)
			continue
		}

		dep, err := parseLine(line)
		if err != nil {
			return entities.Manifest{}, fmt.Errorf("%s:%d: %w", source, i+1, err)
		}

		key := strings.ToLower(dep.Name)
		if seen[key] {
			return entities.Manifest{}, fmt.Errorf("%s:%d: duplicate requirement %q", source, i+1, dep.Name)
		}
		seen[key] = true

		manifest.Dependencies = append(manifest.Dependencies, dep)
	}

	return manifest, nil
}

func parseLine(line string) (entities.Dependency, error) {
	requirement, marker, _ := strings.Cut(line, ";")
	requirement = strings.TrimSpace(requirement)

	match := namePattern.FindStringSubmatch(requirement)
	if match == nil {
		return entities.Dependency{}, fmt.Errorf("invalid requirement %q", line)
	}

	dep := entities.Dependency{Name: match[1], Spec: line}
	if floor := floorPattern.FindStringSubmatch(requirement); floor != nil {
		dep.Floor = floor[1]
	}

	if strings.TrimSpace(marker) != "" {
		platform, err := parsePlatform(marker)
		if err != nil {
			return entities.Dependency{}, err
		}
		if platform != "" {
			dep.Platform = platform
			dep.Optional = true
		}
	}

	return dep, nil
}

// parsePlatform returns the GOOS the marker restricts to, or "" when the
// marker does not mention a platform.
func parsePlatform(marker string) (string, error) {
	match := platformPattern.FindStringSubmatch(marker)
	if match == nil {
		logger.Debugf("Marker %q has no platform restriction, left to the package manager", strings.TrimSpace(marker))
		return "", nil
	}

	goos, ok := platformAliases[strings.ToLower(match[2])]
	if !ok {
		return "", fmt.Errorf("unsupported platform %q in marker", match[2])
	}
	return goos, nil
}

// stripComment drops a "#" comment that starts the line or follows whitespace.
func stripComment(line string) string {
	return strings.TrimSpace(commentPattern.ReplaceAllString(line, ""))
}
