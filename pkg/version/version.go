// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

// Package version provides build and protocol version information for
// didctl, binding the CLI's own build version to the entry schema and
// method-spec versions the underlying didentry library writes into
// every entry.
package version

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/sage-x-project/didentry"
)

// Build information. Populated at build-time via ldflags.
var (
	// Version is the didctl semantic version (set via ldflags).
	Version = "0.1.0"

	// GitCommit is the git commit hash (set via ldflags).
	GitCommit = ""

	// BuildDate is the build date (set via ldflags).
	BuildDate = ""
)

// Info contains version and entry-protocol information.
type Info struct {
	Version           string `json:"version"`
	GitCommit         string `json:"git_commit,omitempty"`
	BuildDate         string `json:"build_date,omitempty"`
	SchemaVersion     string `json:"schema_version"`
	MethodSpecVersion string `json:"method_spec_version"`
	GoVersion         string `json:"go_version"`
	Platform          string `json:"platform"`
}

// Get returns the current version and entry-protocol information.
func Get() Info {
	return Info{
		Version:           Version,
		GitCommit:         GitCommit,
		BuildDate:         BuildDate,
		SchemaVersion:     didentry.SchemaVersion,
		MethodSpecVersion: didentry.MethodSpecVersion,
		GoVersion:         runtime.Version(),
		Platform:          fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the version information as a formatted string.
func String() string {
	info := Get()
	if info.GitCommit != "" {
		return fmt.Sprintf("%s (schema %s, method-spec %s, commit %s, built %s, go %s, %s)",
			info.Version,
			info.SchemaVersion,
			info.MethodSpecVersion,
			info.GitCommit,
			info.BuildDate,
			info.GoVersion,
			info.Platform,
		)
	}
	return fmt.Sprintf("%s (schema %s, method-spec %s, go %s, %s)",
		info.Version,
		info.SchemaVersion,
		info.MethodSpecVersion,
		info.GoVersion,
		info.Platform,
	)
}

// JSON returns the version information as an indented JSON document.
func JSON() (string, error) {
	data, err := json.MarshalIndent(Get(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
