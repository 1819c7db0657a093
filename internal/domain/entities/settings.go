package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ConfigEnvVar names an explicit config file, bypassing auto-detection.
const ConfigEnvVar = "LOGPILOT_CONFIG"

// Settings is the top-level configuration for logpilot.
type Settings struct {
	Workdir  string                       `yaml:"workdir"`
	Manifest string                       `yaml:"manifest"`
	Runtime  RuntimeConfig                `yaml:"runtime"`
	Programs map[ActionName]ProgramConfig `yaml:"programs"`
}

// RuntimeConfig lists the binaries probed on PATH, in order of preference.
// SearchDirs are probed after PATH and are empty unless configured.
type RuntimeConfig struct {
	Candidates      []string `yaml:"candidates"`
	PackageManagers []string `yaml:"package_managers"`
	SearchDirs      []string `yaml:"search_dirs"`
}

// ProgramConfig describes how a menu action is launched.
// A Script is run with the detected runtime; a Command is run as-is.
type ProgramConfig struct {
	Script  string   `yaml:"script"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the configuration used when no file is found.
func DefaultSettings() *Settings {
	return &Settings{
		Workdir:  ".",
		Manifest: "requirements.txt",
		Runtime: RuntimeConfig{
			Candidates:      []string{"python3", "python"},
			PackageManagers: []string{"pip3", "pip"},
		},
		Programs: map[ActionName]ProgramConfig{
			ActionAnalysis:  {Script: "main.py"},
			ActionDemo:      {Script: "demo.py"},
			ActionReadiness: {Script: "test_system.py"},
			ActionExamples:  {Script: "example.py"},
		},
	}
}

// NewSettings reads and parses a configuration file on top of the defaults,
// expanding environment variables.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var parsed Settings
	if unmarshalErr := yaml.Unmarshal(data, &parsed); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings := DefaultSettings()
	settings.merge(&parsed)
	settings.expand()

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// NewSettingsFromEnvironment loads the file named by LOGPILOT_CONFIG, or the
// first file found in the default locations, or falls back to the defaults.
func NewSettingsFromEnvironment() (*Settings, error) {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		logger.Debugf("Using config file from %s: %s", ConfigEnvVar, path)
		return NewSettings(path)
	}

	path, err := FindConfigFile()
	if err != nil {
		logger.Debug("No config file found, using defaults")
		return DefaultSettings(), nil
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".logpilot.yaml",
		".logpilot.yml",
		"logpilot.yaml",
		"logpilot.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ManifestPath resolves the manifest location against the working directory.
func (s *Settings) ManifestPath() string {
	if filepath.IsAbs(s.Manifest) {
		return s.Manifest
	}
	return filepath.Join(s.Workdir, s.Manifest)
}

// Program builds the external program for a menu action. runtime is the
// resolved interpreter used for script-based entries.
func (s *Settings) Program(action ActionName, runtime string) (Program, error) {
	cfg, ok := s.Programs[action]
	if !ok {
		return Program{}, fmt.Errorf("no program configured for action %q", action)
	}

	if cfg.Command != "" {
		return Program{Command: cfg.Command, Args: cfg.Args, Dir: s.Workdir}, nil
	}

	args := append([]string{cfg.Script}, cfg.Args...)
	return Program{Command: runtime, Args: args, Dir: s.Workdir}, nil
}

// NeedsRuntime reports whether the action is launched through the interpreter.
func (s *Settings) NeedsRuntime(action ActionName) bool {
	cfg, ok := s.Programs[action]
	return ok && cfg.Command == ""
}

// merge overlays the non-empty fields of other onto s.
func (s *Settings) merge(other *Settings) {
	if other.Workdir != "" {
		s.Workdir = other.Workdir
	}
	if other.Manifest != "" {
		s.Manifest = other.Manifest
	}
	if len(other.Runtime.Candidates) > 0 {
		s.Runtime.Candidates = other.Runtime.Candidates
	}
	if len(other.Runtime.PackageManagers) > 0 {
		s.Runtime.PackageManagers = other.Runtime.PackageManagers
	}
	if len(other.Runtime.SearchDirs) > 0 {
		s.Runtime.SearchDirs = other.Runtime.SearchDirs
	}
	for action, program := range other.Programs {
		s.Programs[action] = program
	}
}

// expand resolves ${VAR} references in path-like fields.
func (s *Settings) expand() {
	s.Workdir = expandEnv(s.Workdir)
	s.Manifest = expandEnv(s.Manifest)
	for i := range s.Runtime.SearchDirs {
		s.Runtime.SearchDirs[i] = expandEnv(s.Runtime.SearchDirs[i])
	}
	for action, program := range s.Programs {
		program.Script = expandEnv(program.Script)
		program.Command = expandEnv(program.Command)
		for i := range program.Args {
			program.Args[i] = expandEnv(program.Args[i])
		}
		s.Programs[action] = program
	}
}

// validate checks for required configuration values.
func (s *Settings) validate() error {
	if len(s.Runtime.Candidates) == 0 {
		return errors.New("runtime.candidates must list at least one binary")
	}
	if len(s.Runtime.PackageManagers) == 0 {
		return errors.New("runtime.package_managers must list at least one binary")
	}

	for _, item := range MenuItems() {
		if item.Action == ActionExit || item.Action == ActionInstall {
			continue
		}
		program, ok := s.Programs[item.Action]
		if !ok {
			return fmt.Errorf("programs.%s is required", item.Action)
		}
		if program.Script == "" && program.Command == "" {
			return fmt.Errorf("programs.%s needs either a script or a command", item.Action)
		}
	}

	return nil
}

func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
