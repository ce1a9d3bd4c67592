// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the npy tools.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a parameter struct bound to
// flags via struct tags ([Command.Params] and [BindFlags]), and a Run
// function. Commands are assembled into a tree in cmd/npy/commands and
// dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// Errors flow out of Run as ordinary error values. [ToolError]
// categorizes them (validation, not_found, internal) and [ExitStatus]
// maps the category to the process exit status; [ExitError] lets a
// command exit non-zero without an extra printed message.
package cli
