// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// ExitError signals a non-zero exit code without printing an extra
// error message. When a command handler returns an ExitError, main
// exits with the specified code without printing the error string —
// the command is expected to have already written its own output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. main checks for this interface on
// returned errors to distinguish "handled non-zero exit" from
// "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExitStatus maps a command error to the process exit status: nil is
// 0, an [ExitError] supplies its own code, validation errors exit 2
// (usage convention), and everything else exits 1.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	var tool *ToolError
	if errors.As(err, &tool) && tool.Category == CategoryValidation {
		return 2
	}
	return 1
}
