// Package config loads and validates ojtest configuration from
// .ojtest/config.yaml, merging file values over defaults and CLI flags over
// file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mizutani/ojtest/internal/percent"
)

// HistoryConfig represents scan history configuration
type HistoryConfig struct {
	// Enabled enables recording of discovery runs
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the history database
	DBPath string `yaml:"db_path"`
}

// Config represents ojtest configuration options
type Config struct {
	// Format is the printf-style pattern describing test-case file names,
	// with %s for the case name and %e for the extension tag
	Format string `yaml:"format"`

	// Directory is the directory scanned for test-case files
	Directory string `yaml:"directory"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// History contains scan history configuration
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Format:    "%s.%e",
		Directory: "test",
		LogLevel:  "info",
		History: HistoryConfig{
			Enabled: true,
			DBPath:  filepath.Join(".ojtest", "history.db"),
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from the file over the defaults.
	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.Directory != "" {
		cfg.Directory = fileCfg.Directory
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.History.DBPath != "" {
		cfg.History.DBPath = fileCfg.History.DBPath
	}

	// The enabled flag needs presence detection: a bare `history:` section
	// with enabled omitted must keep the default.
	var rawMap map[string]any
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if section, exists := rawMap["history"]; exists && section != nil {
			if historyMap, ok := section.(map[string]any); ok {
				if _, exists := historyMap["enabled"]; exists {
					cfg.History.Enabled = fileCfg.History.Enabled
				}
			}
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .ojtest/config.yaml in the
// specified directory. If the directory or file doesn't exist, returns
// default configuration without error.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".ojtest", "config.yaml"))
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values, so CLI flags take
// precedence over config file settings.
func (c *Config) MergeWithFlags(format *string, directory *string, logLevel *string, historyEnabled *bool) {
	if format != nil {
		c.Format = *format
	}
	if directory != nil {
		c.Directory = *directory
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if historyEnabled != nil {
		c.History.Enabled = *historyEnabled
	}
}

// Validate validates the configuration values.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	if c.Format == "" {
		return fmt.Errorf("format cannot be empty")
	}
	if _, err := percent.Tokens(c.Format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	if c.Directory == "" {
		return fmt.Errorf("directory cannot be empty")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}

	if c.History.Enabled && c.History.DBPath == "" {
		return fmt.Errorf("history.db_path cannot be empty when history is enabled")
	}

	return nil
}
