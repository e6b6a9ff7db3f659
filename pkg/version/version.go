// Package version reports the build version of the listbox binary.
package version

import "github.com/Masterminds/semver/v3"

// Set at build time with -ldflags "-X github.com/rshade/listbox/pkg/version.version=...".
var (
	version   = "0.1.0-dev" //nolint:gochecknoglobals // Overridden by ldflags
	gitCommit = ""          //nolint:gochecknoglobals // Overridden by ldflags
	buildDate = ""          //nolint:gochecknoglobals // Overridden by ldflags
)

// GetVersion returns the build version.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build date, if known.
func GetBuildDate() string {
	return buildDate
}

// IsRelease reports whether the version is a semantic version without a
// prerelease suffix.
func IsRelease() bool {
	v, err := semver.NewVersion(version)
	return err == nil && v.Prerelease() == ""
}
