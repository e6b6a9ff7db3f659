package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/listbox/internal/listbox"
)

// Output formats for the selection.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

const (
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultListHeight = 10
)

var (
	// ErrInvalidOutputFormat is returned for an output format other than text, json or yaml.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidHeight is returned for a negative listbox height.
	ErrInvalidHeight = errors.New("listbox height must not be negative")
)

// Config is the listbox CLI configuration.
type Config struct {
	SchemaVersion string        `yaml:"schema_version"`
	Logging       LoggingConfig `yaml:"logging"`
	Listbox       ListboxConfig `yaml:"listbox"`
	Output        OutputConfig  `yaml:"output"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
	Caller bool   `yaml:"caller"`
}

// ListboxConfig holds defaults for interactive listboxes.
type ListboxConfig struct {
	// Mode is single, follow-focus or multi.
	Mode        string `yaml:"mode"`
	Virtualized bool   `yaml:"virtualized"`
	Height      int    `yaml:"height"`
}

// OutputConfig controls how the selection is printed.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Listbox: ListboxConfig{
			Mode:   listbox.ModeSingle.String(),
			Height: defaultListHeight,
		},
		Output: OutputConfig{
			Format: OutputText,
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := New()
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the schema version and every section.
func (c *Config) Validate() error {
	if err := CheckSchemaVersion(c.SchemaVersion); err != nil {
		return err
	}
	if _, err := c.Listbox.ParseMode(); err != nil {
		return err
	}
	if c.Listbox.Height < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHeight, c.Listbox.Height)
	}
	return ValidateOutputFormat(c.Output.Format)
}

// ParseMode returns the configured selection mode.
func (lc ListboxConfig) ParseMode() (listbox.Mode, error) {
	return listbox.ParseMode(lc.Mode)
}

// ValidateOutputFormat checks format.
func ValidateOutputFormat(format string) error {
	switch format {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutputFormat, format)
	}
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
