// Package rubytype keeps typed text in sync with a per-character code
// annotation. The engine lives in package engine; this package only carries
// release metadata.
package rubytype

import (
	_ "embed"
	"regexp"
	"strings"
)

// DevVersion is reported when the embedded VERSION file is missing or not
// SemVer, as in a build from an edited checkout.
const DevVersion = "0.0.0-dev"

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release of the rubytype binary, without a leading v.
func Version() string {
	return parseVersion(embeddedVersion)
}

// VersionTag is Version as printed by `rubytype --version`.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

func parseVersion(raw string) string {
	v := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	if !IsSemver(v) {
		return DevVersion
	}
	return v
}
