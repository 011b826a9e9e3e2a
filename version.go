// Package lineed is a line-oriented text editing core with a terminal front
// end. The document model lives in buffer, the editing operations in state and
// the Bubble Tea component in editor.
package lineed

import (
	_ "embed"
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

//go:embed VERSION
var rawVersion string

var releaseRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(-[0-9A-Za-z.-]+)?$`)

// Version is the release version without the leading "v".
func Version() string { return strings.TrimSpace(rawVersion) }

// VersionTag is Version in git tag form.
func VersionTag() string { return "v" + Version() }

// Describe is the line printed by `lineed version`.
func Describe() string {
	return fmt.Sprintf("lineed %s (%s %s/%s)", VersionTag(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// IsRelease reports whether v is MAJOR.MINOR.PATCH with an optional
// pre-release suffix.
func IsRelease(v string) bool {
	return releaseRE.MatchString(strings.TrimSpace(v))
}
