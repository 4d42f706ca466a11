// Package config reads the optional .shipit.yml file at the repository root.
// Flags override config values, config values override built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up at the repository root
const FileName = ".shipit.yml"

// Config holds per-repository defaults for shipit
type Config struct {
	Remote string      `yaml:"remote,omitempty"`
	Branch string      `yaml:"branch,omitempty"`
	Build  BuildConfig `yaml:"build,omitempty"`
	Run    RunConfig   `yaml:"run,omitempty"`
}

// BuildConfig holds defaults for the build command
type BuildConfig struct {
	Entry string `yaml:"entry,omitempty"`
	Spec  string `yaml:"spec,omitempty"`
	Name  string `yaml:"name,omitempty"`
	Icon  string `yaml:"icon,omitempty"`
}

// RunConfig holds defaults for the run command
type RunConfig struct {
	Venv   string `yaml:"venv,omitempty"`
	Python string `yaml:"python,omitempty"`
}

// Load reads the config file from the repository root.
// A missing file is not an error and yields the zero config.
func Load(repoRoot string) (*Config, error) {
	path := filepath.Join(repoRoot, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// RemoteOr returns the configured remote or the fallback
func (c *Config) RemoteOr(fallback string) string {
	if c.Remote != "" {
		return c.Remote
	}
	return fallback
}

// BranchOr returns the configured branch or the fallback
func (c *Config) BranchOr(fallback string) string {
	if c.Branch != "" {
		return c.Branch
	}
	return fallback
}
