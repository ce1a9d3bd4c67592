// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "npy",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "show",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "show"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"show"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "show" {
		t.Errorf("dispatched to %q, want %q", called, "show")
	}
}

func TestCommand_Execute_PassesArgsAndLogger(t *testing.T) {
	var receivedArgs []string
	var receivedLogger *slog.Logger

	root := &Command{
		Name: "npy",
		Subcommands: []*Command{
			{
				Name: "show",
				Run: func(_ context.Context, args []string, logger *slog.Logger) error {
					receivedArgs = args
					receivedLogger = logger
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"show", "a.npy", "b.npy"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(receivedArgs) != 2 || receivedArgs[0] != "a.npy" || receivedArgs[1] != "b.npy" {
		t.Errorf("args = %v, want [a.npy b.npy]", receivedArgs)
	}
	if receivedLogger == nil {
		t.Error("Run received a nil logger")
	}
}

func TestCommand_Execute_ParamsFlagParsing(t *testing.T) {
	type showParams struct {
		EdgeItems int  `flag:"edge-items,n" desc:"edge items" default:"-1"`
		ShowStats bool `flag:"show-stats" desc:"append statistics" default:"true"`
	}

	var params showParams
	var positional []string

	command := &Command{
		Name:   "show",
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			positional = args
			return nil
		},
	}

	err := command.Execute(context.Background(), []string{"-n", "3", "--show-stats=false", "data.npy"})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if params.EdgeItems != 3 {
		t.Errorf("EdgeItems = %d, want 3", params.EdgeItems)
	}
	if params.ShowStats {
		t.Error("ShowStats = true, want false")
	}
	if len(positional) != 1 || positional[0] != "data.npy" {
		t.Errorf("positional args = %v, want [data.npy]", positional)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var outPath string
	var target string

	command := &Command{
		Name: "plot",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("plot", pflag.ContinueOnError)
			flagSet.StringVar(&outPath, "out", "", "output path")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"--out", "chart.png", "data.npy"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if outPath != "chart.png" {
		t.Errorf("outPath = %q, want %q", outPath, "chart.png")
	}
	if target != "data.npy" {
		t.Errorf("target = %q, want %q", target, "data.npy")
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "show",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flagSet.Bool("show-stats", true, "append statistics")
			flagSet.String("config", "", "config file path")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--show-stast"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --show-stats") {
		t.Errorf("error = %q, want suggestion for '--show-stats'", errStr)
	}
	// Suggestion should be on the same line as the error, not buried.
	if !strings.Contains(errStr, "show-stast") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	// Should include a pointer to --help.
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "show",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flagSet.Bool("show-stats", true, "append statistics")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "npy",
		Subcommands: []*Command{
			{Name: "show"},
			{Name: "plot"},
			{Name: "version"},
		},
	}

	err := root.Execute(context.Background(), []string{"plto"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"plot\"") {
		t.Errorf("error = %q, want suggestion for 'plot'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "npy",
		Subcommands: []*Command{
			{Name: "show"},
			{Name: "plot"},
		},
	}

	err := root.Execute(context.Background(), []string{"zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			root := &Command{
				Name:    "npy",
				Summary: "NumPy array file tools",
				Subcommands: []*Command{
					{Name: "show", Summary: "Inspect array files"},
				},
			}

			err := root.Execute(context.Background(), []string{helpArg})
			if err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
		})
	}
}

func TestCommand_Execute_HelpAfterFlags(t *testing.T) {
	command := &Command{
		Name: "show",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flagSet.Bool("show-stats", true, "append statistics")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			t.Error("Run called, want help output instead")
			return nil
		},
	}

	// pflag surfaces an undefined --help as ErrHelp; Execute turns it
	// into help output rather than an error.
	if err := command.Execute(context.Background(), []string{"--show-stats", "--help"}); err != nil {
		t.Errorf("Execute() error: %v", err)
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name: "npy",
		Subcommands: []*Command{
			{Name: "show", Summary: "Inspect array files"},
		},
	}

	err := root.Execute(context.Background(), []string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "npy",
		Description: "Tools for inspecting and plotting NumPy array files.",
		Subcommands: []*Command{
			{Name: "show", Summary: "Print array metadata and contents"},
			{Name: "plot", Summary: "Visualize an array"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Inspect an array file",
				Command:     "npy show weights.npy",
			},
			{
				Description: "Render a plot to a PNG",
				Command:     "npy plot samples.npy --out samples.png",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	// Verify structural elements are present.
	for _, want := range []string{
		"Tools for inspecting and plotting NumPy array files.",
		"Usage:",
		"npy <command> [flags]",
		"Commands:",
		"show",
		"Print array metadata and contents",
		"plot",
		"Visualize an array",
		"Examples:",
		"npy show weights.npy",
		"npy plot samples.npy",
		"Run 'npy <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_WithFlags(t *testing.T) {
	command := &Command{
		Name:    "plot",
		Summary: "Visualize an array",
		Usage:   "npy plot PATH [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("plot", pflag.ContinueOnError)
			flagSet.String("out", "", "write a PNG instead of opening a window")
			flagSet.String("member", "", "NPZ member to plot")
			return flagSet
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"npy plot PATH [flags]",
		"Flags:",
		"out",
		"member",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "npy"}
	show := &Command{Name: "show", parent: root}

	if got := root.fullName(); got != "npy" {
		t.Errorf("root.fullName() = %q, want %q", got, "npy")
	}
	if got := show.fullName(); got != "npy show" {
		t.Errorf("show.fullName() = %q, want %q", got, "npy show")
	}
}
