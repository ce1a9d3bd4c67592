// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Npyshow prints array metadata, statistics, and contents for NumPy
// .npy files. It is the standalone twin of "npy show".
//
// Usage:
//
//	npyshow [PATHS...] [flags]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npytools/npytools/cmd/npy/cli"
	showcmd "github.com/npytools/npytools/cmd/npy/show"
	"github.com/npytools/npytools/lib/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version":
			fmt.Printf("npyshow %s\n", version.Info())
			return
		}
	}

	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.ExitStatus(err))
	}
}

func run() error {
	command := showcmd.Command()
	command.Name = "npyshow"
	command.Usage = "npyshow [PATHS...] [flags]"
	command.Examples = []cli.Example{
		{
			Description: "Inspect a single file",
			Command:     "npyshow weights.npy",
		},
		{
			Description: "Add min/mean/median/max and zero/nan/inf counts",
			Command:     "npyshow --show-stats weights.npy",
		},
		{
			Description: "Metadata only",
			Command:     "npyshow --no-show-array *.npy",
		},
	}
	return command.Execute(context.Background(), os.Args[1:])
}
