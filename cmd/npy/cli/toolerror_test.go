// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestToolError_ErrorWithoutHint(t *testing.T) {
	err := Validation("path does not exist: %q", "missing.npy")
	if err.Error() != `path does not exist: "missing.npy"` {
		t.Errorf("Error() = %q, want %q", err.Error(), `path does not exist: "missing.npy"`)
	}
}

func TestToolError_ErrorWithHint(t *testing.T) {
	err := Validation("no paths given").
		WithHint("Pass one or more .npy files.")

	want := "no paths given\n\nPass one or more .npy files."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestToolError_WithHintReturnsReceiver(t *testing.T) {
	original := Validation("bad input")
	chained := original.WithHint("fix it")
	if original != chained {
		t.Error("WithHint should return the same pointer")
	}
}

func TestToolError_WithHintPreservesCategory(t *testing.T) {
	err := NotFound("member %q not found", "weights").
		WithHint("Omit --member to plot the first member.")

	if err.Category != CategoryNotFound {
		t.Errorf("Category = %q, want %q", err.Category, CategoryNotFound)
	}
}

func TestToolError_CategorySurvivesWrapping(t *testing.T) {
	inner := Validation("bad path")
	wrapped := fmt.Errorf("show failed: %w", inner)

	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatal("errors.As should find ToolError in wrapped chain")
	}
	if toolErr.Category != CategoryValidation {
		t.Errorf("Category = %q after unwrap, want %q", toolErr.Category, CategoryValidation)
	}
}

func TestToolError_UnwrapReachesSentinel(t *testing.T) {
	sentinel := errors.New("member not found")
	err := NotFound("plot: %w", sentinel)

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should reach the sentinel through the ToolError")
	}
}

func TestToolError_EmptyHintNotAppended(t *testing.T) {
	err := Internal("unexpected failure")
	if strings.Contains(err.Error(), "\n\n") {
		t.Error("empty hint should not add blank line to error message")
	}
}

func TestToolError_AllCategories(t *testing.T) {
	tests := []struct {
		name     string
		err      *ToolError
		category ErrorCategory
	}{
		{"Validation", Validation("bad"), CategoryValidation},
		{"NotFound", NotFound("missing"), CategoryNotFound},
		{"Internal", Internal("bug"), CategoryInternal},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.err.Category != test.category {
				t.Errorf("Category = %q, want %q", test.err.Category, test.category)
			}
			// All constructors should support WithHint.
			hinted := test.err.WithHint("try again")
			if hinted.Hint != "try again" {
				t.Errorf("Hint = %q after WithHint, want %q", hinted.Hint, "try again")
			}
		})
	}
}
