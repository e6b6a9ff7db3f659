package config

import (
	"context"
	"os"

	"github.com/rshade/listbox/internal/logging"
)

// ResolvePath determines the config file to read. It checks (in order):
//  1. flagValue (--config CLI flag)
//  2. LISTBOX_CONFIG env var
//  3. config.yaml in the config directory
//
// The returned explicit flag is true for the first two sources.
func ResolvePath(flagValue string) (string, bool) {
	if flagValue != "" {
		return flagValue, true
	}

	if envPath := os.Getenv("LISTBOX_CONFIG"); envPath != "" {
		return envPath, true
	}

	path, err := DefaultConfigPath()
	if err != nil {
		return "", false
	}
	return path, false
}

// NewWithDefaults creates a Config by shallow-merging the file at path over
// the defaults. A missing or broken file falls back to the defaults with a
// warning.
func NewWithDefaults(ctx context.Context, path string) *Config {
	cfg := New()

	if path == "" || !fileExists(path) {
		return cfg
	}

	loaded, err := Load(path)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Str("operation", "merge_config").
			Err(err).
			Str("config_path", path).
			Msg("failed to load config, using defaults")
		return cfg
	}

	return loaded
}
