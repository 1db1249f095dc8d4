// Package version provides version information for the pyrepo CLI.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`
}

// PythonInfo describes the interpreter generated projects will target.
type PythonInfo struct {
	// Version is the resolved "major.minor" version.
	Version string `json:"version"`

	// Source names where the version came from (flag, env, config, detected, default).
	Source string `json:"source"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("pyrepo:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion)
}

// String returns a human-readable interpreter string.
func (p PythonInfo) String() string {
	if p.Version == "" {
		return "  Target Version: unknown"
	}
	return fmt.Sprintf("  Target Version: %s (%s)", p.Version, p.Source)
}

// FullVersionString returns complete version information including the target Python.
func FullVersionString(info Info, py PythonInfo) string {
	return fmt.Sprintf("%s\n\nPython:\n%s", info.String(), py.String())
}
