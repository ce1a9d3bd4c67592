// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Npy is the unified CLI for working with NumPy array files. It
// provides subcommands for inspecting array metadata, statistics, and
// contents (show) and for rendering arrays as charts and images
// (plot). The standalone npyshow and npyplot binaries expose the same
// two commands individually.
package main
