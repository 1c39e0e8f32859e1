// Package config loads gridsync settings from a YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the CLI and the session.
type Config struct {
	// Format is the rendering format: json, text or html.
	Format string `yaml:"format"`
	// Pretty indents JSON output.
	Pretty bool `yaml:"pretty"`
	// HeadingRows overrides the imported headingRows when >= 0.
	HeadingRows int `yaml:"heading_rows"`
	// HeadingColumns overrides the imported headingColumns when >= 0.
	HeadingColumns int `yaml:"heading_columns"`
	// CheckInvariants validates every table after each edit.
	CheckInvariants bool `yaml:"check_invariants"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:         "json",
		HeadingRows:    -1,
		HeadingColumns: -1,
		LogLevel:       "info",
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	switch c.Format {
	case "json", "text", "html":
	default:
		return fmt.Errorf("invalid format: %s (must be json, text, or html)", c.Format)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return level, fmt.Errorf("invalid log level: %s", name)
	}
	return level, nil
}
