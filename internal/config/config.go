// Package config provides configuration management for the cleaning worker.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInputPath    = errors.New("input.path is required")
	ErrInvalidDelimiter    = errors.New("input.delimiter must be a single character")
	ErrMissingOutputPath   = errors.New("output.path is required")
	ErrInvalidOutputFormat = errors.New("output.format must be 'csv' or 'json'")
	ErrInvalidPreviewRows  = errors.New("preview.rows must be at least 1")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat    = errors.New("logging.format must be 'text' or 'json'")
)

// Config represents the complete cleaner configuration.
type Config struct {
	Cleaner CleanerConfig `yaml:"cleaner"`
}

// CleanerConfig contains cleaner-specific settings.
type CleanerConfig struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Preview PreviewConfig `yaml:"preview"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig describes the CSV source.
type InputConfig struct {
	Path      string `yaml:"path"`
	Delimiter string `yaml:"delimiter"`
}

// DelimiterRune returns the configured field delimiter, comma when unset.
func (ic *InputConfig) DelimiterRune() rune {
	if ic.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(ic.Delimiter)
	return r
}

// OutputConfig defines where and how the cleaned table is written.
type OutputConfig struct {
	Path        string `yaml:"path"`
	Format      string `yaml:"format"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// PreviewConfig controls the post-run table preview.
type PreviewConfig struct {
	Enabled bool `yaml:"enabled"`
	Rows    int  `yaml:"rows"`
	Summary bool `yaml:"summary"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given. Input and
// output paths still have to come from flags.
func Default() *Config {
	return &Config{
		Cleaner: CleanerConfig{
			Input:   InputConfig{Delimiter: ","},
			Output:  OutputConfig{Format: "csv"},
			Preview: PreviewConfig{Enabled: true, Rows: 5, Summary: true},
			Logging: LoggingConfig{Level: "info", Format: "text"},
		},
	}
}

// LoadConfig loads configuration from a YAML file and fills defaults for
// fields left empty. Validation is deferred to Validate so command-line
// flags can override file values first.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	def := Default()

	if c.Cleaner.Input.Delimiter == "" {
		c.Cleaner.Input.Delimiter = def.Cleaner.Input.Delimiter
	}

	if c.Cleaner.Output.Format == "" {
		c.Cleaner.Output.Format = def.Cleaner.Output.Format
	}

	if c.Cleaner.Preview.Enabled && c.Cleaner.Preview.Rows == 0 {
		c.Cleaner.Preview.Rows = def.Cleaner.Preview.Rows
	}

	if c.Cleaner.Logging.Level == "" {
		c.Cleaner.Logging.Level = def.Cleaner.Logging.Level
	}

	if c.Cleaner.Logging.Format == "" {
		c.Cleaner.Logging.Format = def.Cleaner.Logging.Format
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	// Check input config
	if c.Cleaner.Input.Path == "" {
		return ErrMissingInputPath
	}

	if c.Cleaner.Input.Delimiter != "" && utf8.RuneCountInString(c.Cleaner.Input.Delimiter) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, c.Cleaner.Input.Delimiter)
	}

	// Validate output config
	if c.Cleaner.Output.Path == "" {
		return ErrMissingOutputPath
	}

	if c.Cleaner.Output.Format != "csv" && c.Cleaner.Output.Format != "json" {
		return fmt.Errorf("%w: %q", ErrInvalidOutputFormat, c.Cleaner.Output.Format)
	}

	// Validate preview config
	if c.Cleaner.Preview.Enabled && c.Cleaner.Preview.Rows < 1 {
		return ErrInvalidPreviewRows
	}

	// Validate logging config
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Cleaner.Logging.Level] {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Cleaner.Logging.Level)
	}

	if c.Cleaner.Logging.Format != "text" && c.Cleaner.Logging.Format != "json" {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Cleaner.Logging.Format)
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s, Format: %s}",
		c.Cleaner.Input.Path,
		c.Cleaner.Output.Path,
		c.Cleaner.Output.Format,
	)
}
