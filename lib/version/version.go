// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
)

// Set at build time via -ldflags -X; see the package documentation
// for each variable's meaning.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	GitDirty  = "false"
	BuildTime = "unknown"
)

// Info renders the one-line string printed by --version: the semantic
// version, the commit (suffixed -dirty for builds from a modified
// tree), and the build timestamp.
func Info() string {
	commit := GitCommit
	if GitDirty == "true" {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (%s, %s)", Version, commit, BuildTime)
}

// Full extends Info with the Go runtime version and the target
// platform, one indented line each.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns the semantic version alone.
func Short() string { return Version }

// Commit returns the git SHA alone, without the dirty marker.
func Commit() string { return GitCommit }
