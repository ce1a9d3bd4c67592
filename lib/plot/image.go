// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package plot

import (
	"image"
	"image/color"
	"math"

	"github.com/npytools/npytools/lib/npy"
)

// heatmap renders a rows-by-cols matrix as one pixel per cell,
// colored through the colormap by the matrix's own value range. NaN
// cells take the theme background; a constant matrix maps to the low
// end of the gradient.
func heatmap(value func(row, col int) float64, rows, cols int, theme Theme, cmap Colormap) image.Image {
	lo, hi := math.Inf(1), math.Inf(-1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := value(r, c)
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
	}
	span := hi - lo

	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	background := theme.background()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := value(r, c)
			if math.IsNaN(v) {
				img.SetNRGBA(c, r, background)
				continue
			}
			t := 0.0
			switch {
			case math.IsInf(v, 1):
				t = 1
			case math.IsInf(v, -1):
				t = 0
			case span > 0:
				t = (v - lo) / span
			}
			img.SetNRGBA(c, r, cmap.At(t))
		}
	}
	return img
}

// rgbImage renders a rank-3 channels-last view as an RGB image. The
// first three channels become red, green, and blue, with intensities
// normalized by lo and hi, the value range of the complete array
// before any channel truncation. NaN channels render as 0.
func rgbImage(view *npy.Array, lo, hi float64) image.Image {
	shape := view.Shape()
	height, width := shape[0], shape[1]
	span := hi - lo

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: intensity(view.At(y, x, 0), lo, span),
				G: intensity(view.At(y, x, 1), lo, span),
				B: intensity(view.At(y, x, 2), lo, span),
				A: 255,
			})
		}
	}
	return img
}

// intensity normalizes v into [0, 255], clamping out-of-range and
// non-finite values.
func intensity(v, lo, span float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	t := 0.0
	switch {
	case math.IsInf(v, 1):
		t = 1
	case math.IsInf(v, -1):
		t = 0
	case span > 0:
		t = (v - lo) / span
	}
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 255
	}
	return uint8(t*255 + 0.5)
}
