/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"runtime/debug"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	stamped := &debug.BuildInfo{
		GoVersion: "go1.25.5",
		Main:      debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name     string
		release  string
		info     *debug.BuildInfo
		expected string
	}{
		{"release", "v1.2.0", stamped, "v1.2.0-dirty"},
		{"dev build", "dev", stamped, "dev-0123456-dirty"},
		{"module version", "dev", &debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}}, "v0.3.1"},
		{"no stamps", "dev", &debug.BuildInfo{}, "dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fromBuildInfo(tt.release, tt.info).String(); got != tt.expected {
				t.Errorf("String() = %q, expected %q", got, tt.expected)
			}
		})
	}

	b := fromBuildInfo("dev", stamped)
	if b.BuildTime != "2026-10-01T12:00:00Z" || b.GoVersion != "go1.25.5" {
		t.Errorf("unexpected build info %+v", b)
	}
}
