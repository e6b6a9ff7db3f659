package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CurrentSchemaVersion is written by this version of the tool.
const CurrentSchemaVersion = "1.0.0"

// SupportedSchemaConstraint lists the schema versions this version reads.
const SupportedSchemaConstraint = "^1.0.0"

var (
	// ErrInvalidSchemaVersion is returned when schema_version is not a semantic version.
	ErrInvalidSchemaVersion = errors.New("invalid schema_version")

	// ErrUnsupportedSchemaVersion is returned when schema_version is outside SupportedSchemaConstraint.
	ErrUnsupportedSchemaVersion = errors.New("unsupported schema_version")
)

// CheckSchemaVersion validates a schema_version field. An empty version is
// treated as the current one.
func CheckSchemaVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidSchemaVersion, version, err)
	}

	constraint, err := semver.NewConstraint(SupportedSchemaConstraint)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w %s (supported: %s)", ErrUnsupportedSchemaVersion, v, SupportedSchemaConstraint)
	}
	return nil
}
