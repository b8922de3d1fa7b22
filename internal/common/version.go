package common

import (
	"fmt"
	"runtime/debug"
)

// Version variables injected at build time via ldflags
var (
	Version   = "dev"
	Build     = "unknown"
	GitCommit = "unknown"
)

func init() {
	if GitCommit != "unknown" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			GitCommit = s.Value[:7]
		}
		if s.Key == "vcs.time" && Build == "unknown" {
			Build = s.Value
		}
	}
}

// GetVersion returns the semantic version string
func GetVersion() string {
	return Version
}

// GetBuild returns the build timestamp
func GetBuild() string {
	return Build
}

// GetGitCommit returns the short git commit hash
func GetGitCommit() string {
	return GitCommit
}

// GetFullVersion returns a formatted version string with all build info
func GetFullVersion() string {
	return fmt.Sprintf("%s (build: %s, commit: %s)", Version, Build, GitCommit)
}

// VersionInfo returns the build info as a string map for API responses.
func VersionInfo() map[string]string {
	return map[string]string{
		"version": Version,
		"build":   Build,
		"commit":  GitCommit,
	}
}
