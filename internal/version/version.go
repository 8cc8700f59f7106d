// Package version carries build metadata injected via -ldflags.
package version

import "fmt"

var (
	// Version is the release number, overridden on tagged builds.
	Version = "0.1.0"

	// GitCommit is the short commit hash of the build.
	GitCommit = "unknown"

	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// String renders the full version line shown in logs and the About dialog.
func String() string {
	return fmt.Sprintf("v%s (%s, built %s)", Version, GitCommit, BuildTime)
}
