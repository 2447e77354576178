package lint

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/mod/semver"
)

// Version is the engine version reported to hosts.
const Version = "2.11.1"

// MinimumVersion is the oldest engine version the adapter accepts.
const MinimumVersion = "1.4.6"

var versionRegex = regexp.MustCompile(`(?P<version>\d+\.\d+\.\d+)`)

var (
	// ErrInvalidVersion is returned when a version string is not MAJOR.MINOR.PATCH.
	ErrInvalidVersion = errors.New("invalid engine version")

	// ErrVersionTooOld is returned when the engine is older than MinimumVersion.
	ErrVersionTooOld = errors.New("engine version too old")
)

// ExtractVersion finds the first MAJOR.MINOR.PATCH version in text,
// e.g. the output of "pycodestyle --version".
func ExtractVersion(text string) (string, bool) {
	m := versionRegex.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[versionRegex.SubexpIndex("version")], true
}

// CheckVersion verifies that v satisfies ">= MinimumVersion".
func CheckVersion(v string) error {
	found, ok := ExtractVersion(v)
	if !ok || !semver.IsValid("v"+found) {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	if semver.Compare("v"+found, "v"+MinimumVersion) < 0 {
		return fmt.Errorf("%w: %s < %s", ErrVersionTooOld, found, MinimumVersion)
	}
	return nil
}
