/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the hopetokens CLI.
package version

import (
	"runtime/debug"
)

// Version is set at release time via -ldflags "-X ...version.Version=v1.2.3".
var Version = "dev"

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"goVersion"`
}

// Get returns the version string.
func Get() string {
	return Info().String()
}

// String formats the version with a short commit and dirty marker for
// development builds.
func (b BuildInfo) String() string {
	v := b.Version
	if v == "dev" && b.Commit != "" {
		v += "-" + shortCommit(b.Commit)
	}
	if b.Dirty {
		v += "-dirty"
	}
	return v
}

// Info reads the module version and VCS stamps embedded by the go tool.
func Info() BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return BuildInfo{Version: Version}
	}
	return fromBuildInfo(Version, info)
}

func fromBuildInfo(release string, info *debug.BuildInfo) BuildInfo {
	b := BuildInfo{Version: release, GoVersion: info.GoVersion}
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			b.Commit = s.Value
		case "vcs.time":
			b.BuildTime = s.Value
		case "vcs.modified":
			b.Dirty = s.Value == "true"
		}
	}
	return b
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
