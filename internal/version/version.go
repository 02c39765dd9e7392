// Package version provides build information for station-menu.
package version

import (
	"fmt"
	"runtime"
)

// Version is the release version. Set at build time with -ldflags.
var Version = "development"

// Commit is the git commit hash. Set at build time with -ldflags.
var Commit = "unknown"

// String returns the version including the commit hash when known.
func String() string {
	if Commit != "unknown" && Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}

// Detailed returns the version with the Go toolchain and platform.
func Detailed() string {
	return fmt.Sprintf("%s (%s, %s/%s)", String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
