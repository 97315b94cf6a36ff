// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"charger-sizing/core/types"
	"charger-sizing/internal/logging"
)

// Config is the main application configuration.
type Config struct {
	// Version is the configuration version.
	Version string `json:"version"`

	// Parameters are the default calculation parameters. CLI flags and
	// site files override them per run.
	Parameters types.Parameters `json:"parameters"`

	// Output contains output configuration.
	Output OutputConfig `json:"output"`

	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration.
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings.
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, markdown).
	DefaultFormat string `json:"default_format"`

	// ShowNotes includes the technical-notes block in CLI output.
	ShowNotes bool `json:"show_notes"`

	// NoColor disables ANSI colors.
	NoColor bool `json:"no_color"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `json:"addr"`
}

// Default returns a default configuration.
func Default() *Config {
	return &Config{
		Version:    "1.0",
		Parameters: types.DefaultParameters(),
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowNotes:     true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath is the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".charger-sizing.json"
	}
	return filepath.Join(home, ".charger-sizing.json")
}

// Load loads configuration from a file, falling back to defaults when
// the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var globalConfig = Default()

// Get returns the global configuration.
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration.
func Set(cfg *Config) {
	globalConfig = cfg
}
