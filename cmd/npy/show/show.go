// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Package show implements the array inspector: an info table per NPY
// file, optional statistics, and the array's truncated printout.
package show

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/npytools/npytools/cmd/npy/cli"
	"github.com/npytools/npytools/lib/arrayfmt"
	"github.com/npytools/npytools/lib/config"
	"github.com/npytools/npytools/lib/npy"
	"github.com/npytools/npytools/lib/sizefmt"
	"github.com/npytools/npytools/lib/stats"
	"github.com/npytools/npytools/lib/table"
)

type showParams struct {
	EdgeItems   int    `flag:"edge-items,n" desc:"first/last elements shown per axis when printing the array"    default:"-1"`
	ShowArray   bool   `flag:"show-array"   desc:"print the array contents after the info table"                 default:"true"`
	NoShowArray bool   `flag:"no-show-array" desc:"suppress the array contents"`
	ShowStats   bool   `flag:"show-stats"   desc:"append statistics rows to the info table (loads the full array)"`
	NoShowStats bool   `flag:"no-show-stats" desc:"suppress the statistics rows"`
	Config      string `flag:"config"       desc:"config file path (overrides NPY_CONFIG)"`
}

// Command returns the "show" subcommand.
func Command() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Print array metadata and contents",
		Description: `Print an info table (shape, dtype, filesize, element count) for each
NPY file, optionally followed by statistics rows and the array's
truncated contents.

Paths that do not end in .npy are skipped silently, so the command can
be pointed at a mixed file list. Plain inspection reads through a
memory mapping and touches only the displayed elements; --show-stats
loads the full array.`,
		Usage: "npy show [PATHS...] [flags]",
		Examples: []cli.Example{
			{
				Description: "Inspect a single file",
				Command:     "npy show weights.npy",
			},
			{
				Description: "Add min/mean/median/max and zero/nan/inf counts",
				Command:     "npy show --show-stats weights.npy",
			},
			{
				Description: "Show five elements at each edge of long axes",
				Command:     "npy show -n 5 weights.npy",
			},
			{
				Description: "Metadata only",
				Command:     "npy show --no-show-array *.npy",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return run(params, args, os.Stdout, logger)
		},
	}
}

// run inspects each path in order. All paths are checked for
// existence before any output, so a typo late in the argument list
// fails the command instead of half-printing. The first per-file
// failure aborts; output already printed for earlier files stands.
func run(params showParams, paths []string, stdout io.Writer, logger *slog.Logger) error {
	cfg, err := config.Resolve(params.Config)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cli.NotFound("config: %v", err)
		}
		return cli.Validation("config: %v", err)
	}

	options := arrayfmt.Options{
		Precision: cfg.Print.Precision,
		Suppress:  cfg.Print.Suppress,
		EdgeItems: cfg.Print.EdgeItems,
		Threshold: cfg.Print.Threshold,
	}
	if params.EdgeItems >= 0 {
		options.EdgeItems = params.EdgeItems
	}
	showArray := params.ShowArray && !params.NoShowArray
	showStats := params.ShowStats && !params.NoShowStats

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return cli.Validation("path does not exist: %s", path)
			}
			return cli.Validation("cannot access %s: %v", path, err)
		}
	}

	heading := headingStyle(stdout)

	for _, path := range paths {
		if !strings.HasSuffix(path, ".npy") {
			logger.Debug("skipping non-npy path", "path", path)
			continue
		}
		if err := showFile(path, heading, options, showArray, showStats, stdout, logger); err != nil {
			return err
		}
	}
	return nil
}

// showFile prints one file's heading, info table, and optional array
// contents. Element reads run under the mapping fault guard, before
// any output, so a file truncated while mapped fails with an error
// and prints nothing. The memory mapping is released on every exit
// path.
func showFile(path string, heading lipgloss.Style, options arrayfmt.Options, showArray, showStats bool, stdout io.Writer, logger *slog.Logger) error {
	arr, err := npy.Open(path)
	if err != nil {
		return err
	}
	defer arr.Close()

	logger.Debug("array opened",
		"path", path,
		"shape", npy.FormatShape(arr.Shape()),
		"dtype", arr.DType().Name())

	var rows []table.Row
	var contents string
	var rowsErr error
	if err := arr.Guarded(func() {
		rows, rowsErr = infoRows(arr, showStats)
		if rowsErr == nil && showArray {
			contents = arrayfmt.Format(arr, options)
		}
	}); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if rowsErr != nil {
		return fmt.Errorf("%s: %w", path, rowsErr)
	}

	rendered, err := table.Render(rows)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Fprintln(stdout, heading.Render(path))
	fmt.Fprintln(stdout, rendered)
	if showArray {
		fmt.Fprintln(stdout, contents)
	}
	return nil
}

// infoRows builds the metadata table: always shape, dtype, filesize
// (element data bytes), and element count, in that order; withStats
// appends the seven statistics rows. Statistics over an empty or
// all-NaN array are an error rather than NaN-valued rows.
func infoRows(arr *npy.Array, withStats bool) ([]table.Row, error) {
	size := arr.Size()
	rows := []table.Row{
		{Label: "shape", Value: npy.FormatShape(arr.Shape())},
		{Label: "dtype", Value: arr.DType().Name()},
		{Label: "filesize", Value: sizefmt.Bytes(arr.SizeBytes())},
		{Label: "size", Value: strconv.Itoa(size)},
	}
	if !withStats {
		return rows, nil
	}

	summary, err := stats.Describe(arr.Float64s())
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}
	percent := func(count int) string {
		return fmt.Sprintf("%d (%d%%)", count, 100*count/size)
	}
	rows = append(rows,
		table.Row{Label: "min", Value: statValue(summary.Min)},
		table.Row{Label: "mean", Value: statValue(summary.Mean)},
		table.Row{Label: "median", Value: statValue(summary.Median)},
		table.Row{Label: "max", Value: statValue(summary.Max)},
		table.Row{Label: "zero", Value: percent(summary.Zero)},
		table.Row{Label: "nan", Value: percent(summary.NaN)},
		table.Row{Label: "inf", Value: strconv.Itoa(summary.Inf)},
	)
	return rows, nil
}

// statValue renders one aggregate in scientific notation. Non-finite
// aggregates use the numpy spellings (nan, inf, -inf), the same ones
// the array contents below the table use.
func statValue(value float64) string {
	switch {
	case math.IsNaN(value):
		return "nan"
	case math.IsInf(value, 1):
		return "inf"
	case math.IsInf(value, -1):
		return "-inf"
	}
	return fmt.Sprintf("%.3e", value)
}

// headingStyle returns the style for file-path headings: bold when
// stdout is a terminal, a no-op otherwise so piped output carries the
// path as plain bytes. The profile is set explicitly because the
// renderer would otherwise re-detect it from the environment.
func headingStyle(stdout io.Writer) lipgloss.Style {
	profile := termenv.Ascii
	if file, ok := stdout.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		profile = termenv.NewOutput(file).EnvColorProfile()
	}
	// SetColorProfile is required because lipgloss.Renderer.ColorProfile()
	// ignores the termenv.Output profile and re-detects from the
	// environment unless explicitColorProfile is set.
	renderer := lipgloss.NewRenderer(stdout, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return renderer.NewStyle().Bold(true)
}
