// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the npytools
// commands.
//
// Configuration is loaded from a single file specified by either the
// NPY_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search. Unlike a service deployment, running
// with no file at all is a supported state: [Default] covers every
// field, so the tools work unconfigured.
//
// The file carries two sections. print holds the array-rendering
// defaults the inspector applies (precision, small-value suppression,
// edge items, summarization threshold); plot holds the visualizer's
// theme, chart size, and heatmap colormap. [Config.Validate] rejects
// unknown theme or colormap names and non-positive chart sizes.
//
// Key exports:
//
//   - [Config] -- struct with Print and Plot sections
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load], [LoadFile], [Resolve] -- the entry points for loading
//
// This package depends on no other npytools packages.
package config
