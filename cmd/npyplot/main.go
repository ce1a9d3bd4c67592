// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Npyplot renders a NumPy array file as a chart or image in a desktop
// window. It is the standalone twin of "npy plot".
//
// Usage:
//
//	npyplot PATH [flags]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npytools/npytools/cmd/npy/cli"
	plotcmd "github.com/npytools/npytools/cmd/npy/plot"
	"github.com/npytools/npytools/lib/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version":
			fmt.Printf("npyplot %s\n", version.Info())
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
	command := plotcmd.Command()
	command.Name = "npyplot"
	command.Usage = "npyplot PATH [flags]"
	command.Examples = []cli.Example{
		{
			Description: "Plot a sequence",
			Command:     "npyplot loss.npy",
		},
		{
			Description: "Render to a file instead of a window",
			Command:     "npyplot --out loss.png loss.npy",
		},
		{
			Description: "Pick one member of an archive",
			Command:     "npyplot --member weights checkpoint.npz",
		},
	}
	return command.Execute(context.Background(), os.Args[1:])
}
