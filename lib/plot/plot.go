// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Package plot renders arrays as charts or images for the visualizer.
//
// Low-rank arrays become line charts rendered through go-chart; wide
// matrices become per-cell heatmap images; rank-3 arrays become RGB
// images. Charts honor the configured theme and size, while image
// renders are always one pixel per element so the window scales them
// without resampling artifacts.
package plot

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/npytools/npytools/lib/config"
	"github.com/npytools/npytools/lib/npy"
)

// Render turns an array into a displayable image according to the
// plot configuration. Length-1 axes are squeezed away first; dispatch
// is then on rank:
//
//   - rank 1: line plot of the sequence against its indices
//   - rank 2: with m the shorter and M the longer side, the elements
//     are viewed as an (M, m) row-major matrix; m == 2 plots column 0
//     against column 1, 3 <= m <= 5 plots m indexed series, anything
//     wider renders an m-by-M-pixel heatmap
//   - rank 3: axes reordered largest-first so channels go last, first
//     three channels shown as RGB normalized by the full array's range
//
// Empty, rank-0, and rank-4-and-up arrays are errors.
func Render(a *npy.Array, cfg config.PlotConfig) (image.Image, error) {
	theme, err := ThemeByName(cfg.Theme)
	if err != nil {
		return nil, err
	}
	cmap, err := ColormapByName(cfg.Colormap)
	if err != nil {
		return nil, err
	}

	arr := a.Squeeze()
	if arr.Size() == 0 {
		return nil, fmt.Errorf("cannot plot an empty array")
	}
	switch arr.Rank() {
	case 1:
		return lineChart(arr.Float64s(), theme, cfg.Width, cfg.Height)
	case 2:
		return renderMatrix(arr, theme, cmap, cfg.Width, cfg.Height)
	case 3:
		return renderVolume(arr, theme)
	}
	return nil, fmt.Errorf("unsupported array rank %d", arr.Rank())
}

// renderMatrix dispatches a rank-2 array on its shorter side. The
// elements are read in row-major order as an (M, m) matrix whatever
// the array's own orientation, so a (2, 1000) file plots the same as
// a (1000, 2) one.
func renderMatrix(arr *npy.Array, theme Theme, cmap Colormap, width, height int) (image.Image, error) {
	shape := arr.Shape()
	m, longer := shape[0], shape[1]
	if m > longer {
		m, longer = longer, m
	}
	value := func(row, col int) float64 { return arr.Index(row*m + col) }

	switch {
	case m == 2:
		return xyChart(value, longer, theme, width, height)
	case m <= 5:
		return multiSeriesChart(value, longer, m, theme, width, height)
	}
	return heatmap(value, longer, m, theme, cmap), nil
}

// renderVolume shows a rank-3 array as an RGB image. Axes are
// reordered by descending length (ties keep the later axis first) so
// the smallest axis is the channel axis.
func renderVolume(arr *npy.Array, theme Theme) (image.Image, error) {
	shape := arr.Shape()
	order := []int{0, 1, 2}
	sort.SliceStable(order, func(i, j int) bool { return shape[order[i]] < shape[order[j]] })
	order[0], order[2] = order[2], order[0]

	view := arr.Transpose(order...)
	channels := view.Shape()[2]
	if channels < 3 {
		return nil, fmt.Errorf("rank-3 array has %d channels after axis reordering, need at least 3", channels)
	}

	lo, hi := valueRange(arr.Float64s())
	return rgbImage(view, lo, hi), nil
}

// valueRange returns the min and max over the non-NaN values.
func valueRange(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
