package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultChangesDir is where pending change fragments live.
	DefaultChangesDir = ".changes"

	// DefaultProvenance is the provenance source used when none is configured.
	DefaultProvenance = "git"
)

// Config is the top-level configuration for autorelease.
type Config struct {
	// ChangesDir is the directory holding one fragment file per pending change.
	ChangesDir string `yaml:"changes_dir"`

	// Provenance selects the source of fragment creation times ("git", "mtime").
	Provenance string `yaml:"provenance"`

	// AllowEmptyChangelog renders a heading-only section instead of failing
	// when compile-changelog finds no pending fragments.
	AllowEmptyChangelog bool `yaml:"allow_empty_changelog"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		ChangesDir: DefaultChangesDir,
		Provenance: DefaultProvenance,
	}
}

// Load reads and parses a configuration file, filling in defaults for
// omitted values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Default()
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
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
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".autorelease.yaml",
		".autorelease.yml",
		"autorelease.yaml",
		"autorelease.yml",
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

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if cfg.ChangesDir == "" {
		return errors.New("changes_dir must not be empty")
	}

	switch cfg.Provenance {
	case "git", "mtime":
	default:
		return fmt.Errorf("unknown provenance source %q (expected git or mtime)", cfg.Provenance)
	}

	return nil
}
