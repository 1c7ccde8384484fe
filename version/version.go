// Package version provides build version information.
//
// Version and git metadata are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/shadowreader/version.Version=1.0.0"
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version, "dev" for local builds.
	Version = "dev"
	// GitCommit is the short commit hash.
	GitCommit = ""
)

// Short returns a one-line version string like "1.0.0 (abc1234)".
func Short() string {
	commit := GitCommit
	if commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
					commit = setting.Value[:7]
				}
			}
		}
	}
	if commit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}
