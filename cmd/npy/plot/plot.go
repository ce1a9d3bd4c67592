// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Package plot implements the array visualizer: rank-dispatched
// rendering to a desktop window or a PNG file.
package plot

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/npytools/npytools/cmd/npy/cli"
	"github.com/npytools/npytools/lib/config"
	"github.com/npytools/npytools/lib/npy"
	"github.com/npytools/npytools/lib/plot"
	"github.com/npytools/npytools/lib/window"
)

type plotParams struct {
	Out    string `flag:"out"    desc:"write the rendering to this PNG file instead of opening a window"`
	Member string `flag:"member" desc:"NPZ member to plot (default: first member in name order)"`
	Config string `flag:"config" desc:"config file path (overrides NPY_CONFIG)"`
}

// displayFunc opens a rendered image in a window and blocks until the
// window closes.
type displayFunc func(title string, img image.Image) error

// Command returns the "plot" subcommand.
func Command() *cli.Command {
	var params plotParams

	return &cli.Command{
		Name:    "plot",
		Summary: "Visualize an array as a chart or image",
		Description: `Render an NPY or NPZ array and open it in a window. Rank-1 arrays
become a line plot. Rank-2 arrays dispatch on the shorter dimension:
two columns give an x-y plot, three to five give indexed series, more
give a heatmap. Rank-3 arrays are shown as an RGB image with axes
reordered by descending size. Length-1 axes are squeezed out first.

--out writes the rendering to a PNG file instead of opening a window.
Press Escape or Q to close the window.`,
		Usage: "npy plot PATH [flags]",
		Examples: []cli.Example{
			{
				Description: "Plot a sequence",
				Command:     "npy plot loss.npy",
			},
			{
				Description: "Render to a file",
				Command:     "npy plot --out loss.png loss.npy",
			},
			{
				Description: "Pick one member of an archive",
				Command:     "npy plot --member weights checkpoint.npz",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return run(params, args, window.Show, logger)
		},
	}
}

func run(params plotParams, paths []string, display displayFunc, logger *slog.Logger) error {
	cfg, err := config.Resolve(params.Config)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cli.NotFound("config: %v", err)
		}
		return cli.Validation("config: %v", err)
	}
	if len(paths) != 1 {
		return cli.Validation("plot takes exactly one PATH, got %d", len(paths))
	}
	path := paths[0]

	var arr *npy.Array
	if params.Member != "" {
		arr, err = npy.LoadMember(path, params.Member)
	} else {
		arr, err = npy.Load(path)
	}
	if err != nil {
		if errors.Is(err, npy.ErrMemberNotFound) {
			return cli.NotFound("%v", err)
		}
		if errors.Is(err, fs.ErrNotExist) {
			return cli.Validation("path does not exist: %s", path)
		}
		return err
	}

	logger.Debug("array loaded",
		"path", path,
		"shape", npy.FormatShape(arr.Shape()),
		"dtype", arr.DType().Name())

	img, err := plot.Render(arr, cfg.Plot)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if params.Out != "" {
		return writePNG(params.Out, img, logger)
	}
	return display(filepath.Base(path), img)
}

// writePNG encodes img to path.
func writePNG(path string, img image.Image, logger *slog.Logger) error {
	file, err := os.Create(path)
	if err != nil {
		return cli.Internal("creating %s: %v", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return cli.Internal("encoding %s: %v", path, err)
	}
	if err := file.Close(); err != nil {
		return cli.Internal("writing %s: %v", path, err)
	}
	logger.Debug("rendering written",
		"path", path,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())
	return nil
}
