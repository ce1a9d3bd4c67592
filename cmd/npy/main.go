// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npytools/npytools/cmd/npy/cli"
	"github.com/npytools/npytools/cmd/npy/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own diagnostics return an
		// ExitError with the desired exit code. Don't print a
		// redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.ExitStatus(err))
	}
}

func run() error {
	return commands.Root().Execute(context.Background(), os.Args[1:])
}
