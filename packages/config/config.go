package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the envconfirm tool configuration.
type Config struct {
	ModeVar  string   `yaml:"modeVar,omitempty"`  // variable naming the execution mode
	EnvFiles []string `yaml:"envFiles,omitempty"` // .env files exported before checks run
	NoColor  *bool    `yaml:"noColor,omitempty"`
	Verbose  *bool    `yaml:"verbose,omitempty"`
	Bail     *bool    `yaml:"bail,omitempty"` // stop at the first failed rule
}

// BoolPtr returns a pointer to a bool value.
func BoolPtr(b bool) *bool {
	return &b
}

func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false.
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetVerbose returns the verbose setting, defaulting to false.
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetBail returns the bail setting, defaulting to true: checks stop at
// the first failed rule unless asked otherwise.
func (c *Config) GetBail() bool {
	return getBool(c.Bail, true)
}

// ConfigFilenames contains the possible config file names.
var ConfigFilenames = []string{
	".envconfirm.yaml",
	".envconfirm.yml",
	"envconfirm.yaml",
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from the specified path, or searches
// the current directory when path is empty.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory,
// returning defaults when none exists.
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}
	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Merge merges another config into this one, with other taking
// precedence.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.ModeVar != "" {
		result.ModeVar = other.ModeVar
	}
	if len(other.EnvFiles) > 0 {
		result.EnvFiles = append(result.EnvFiles, other.EnvFiles...)
	}

	// Boolean flags - only override if explicitly set in other config
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.Bail != nil {
		result.Bail = other.Bail
	}

	return &result
}
