// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete npy CLI command tree. The npy
// binary and the standalone npyshow/npyplot binaries share the
// subcommand constructors, so the three entry points stay in
// behavioral lockstep.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/npytools/npytools/cmd/npy/cli"
	plotcmd "github.com/npytools/npytools/cmd/npy/plot"
	showcmd "github.com/npytools/npytools/cmd/npy/show"
	"github.com/npytools/npytools/lib/version"
)

// Root builds and returns the complete npy CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "npy",
		Description: `npy: inspect and visualize NumPy array files.

Print array metadata, statistics, and contents with "show"; render
arrays as charts and images with "plot". Both commands read .npy files
and .npz archives.`,
		Subcommands: []*cli.Command{
			showcmd.Command(),
			plotcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("npy %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Inspect an array file",
				Command:     "npy show weights.npy",
			},
			{
				Description: "Inspect with statistics",
				Command:     "npy show --show-stats weights.npy",
			},
			{
				Description: "Plot a sequence",
				Command:     "npy plot loss.npy",
			},
			{
				Description: "Render a plot to a PNG file",
				Command:     "npy plot --out loss.png loss.npy",
			},
		},
	}
}
