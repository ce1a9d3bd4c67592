// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package plot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// errNoFinite reports that every candidate point was NaN or infinite.
var errNoFinite = errors.New("no finite values to plot")

// themedChart returns a chart with the theme's background, canvas,
// and axis colors applied.
func themedChart(theme Theme, width, height int) chart.Chart {
	axisStyle := chart.Style{FontColor: theme.Text, StrokeColor: theme.Axis}
	return chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{FillColor: theme.Background},
		Canvas:     chart.Style{FillColor: theme.Canvas},
		XAxis:      chart.XAxis{Style: axisStyle},
		YAxis:      chart.YAxis{Style: axisStyle},
	}
}

func lineStyle(c drawing.Color) chart.Style {
	return chart.Style{StrokeWidth: 1.5, StrokeColor: c}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// padSingle duplicates a lone point so the x-range is not degenerate;
// go-chart refuses single-point series.
func padSingle(xs, ys []float64) ([]float64, []float64) {
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}
	return xs, ys
}

// applyRanges widens any zero-span axis, which go-chart otherwise
// rejects as an invalid data range. Constant arrays are common enough
// that this has to work.
func applyRanges(ch *chart.Chart, xs, ys []float64) {
	if r := degenerateRange(xs); r != nil {
		ch.XAxis.Range = r
	}
	if r := degenerateRange(ys); r != nil {
		ch.YAxis.Range = r
	}
}

func degenerateRange(values []float64) *chart.ContinuousRange {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo != hi {
		return nil
	}
	return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
}

func renderChart(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decoding rendered chart: %w", err)
	}
	return img, nil
}

// lineChart plots values against their indices. Non-finite values
// are dropped, matching how matplotlib leaves them undrawn.
func lineChart(values []float64, theme Theme, width, height int) (image.Image, error) {
	var xs, ys []float64
	for i, v := range values {
		if isFinite(v) {
			xs = append(xs, float64(i))
			ys = append(ys, v)
		}
	}
	if len(xs) == 0 {
		return nil, errNoFinite
	}
	xs, ys = padSingle(xs, ys)

	ch := themedChart(theme, width, height)
	ch.Series = []chart.Series{chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style:   lineStyle(theme.seriesColor(0)),
	}}
	applyRanges(&ch, xs, ys)
	return renderChart(ch)
}

// xyChart plots column 1 against column 0 of an (n, 2) matrix. Rows
// with a non-finite coordinate are dropped.
func xyChart(value func(row, col int) float64, rows int, theme Theme, width, height int) (image.Image, error) {
	var xs, ys []float64
	for i := 0; i < rows; i++ {
		x, y := value(i, 0), value(i, 1)
		if isFinite(x) && isFinite(y) {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	if len(xs) == 0 {
		return nil, errNoFinite
	}
	xs, ys = padSingle(xs, ys)

	ch := themedChart(theme, width, height)
	ch.Series = []chart.Series{chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style:   lineStyle(theme.seriesColor(0)),
	}}
	applyRanges(&ch, xs, ys)
	return renderChart(ch)
}

// multiSeriesChart plots each column of an (n, m) matrix as its own
// indexed series, with a legend naming the columns.
func multiSeriesChart(value func(row, col int) float64, rows, cols int, theme Theme, width, height int) (image.Image, error) {
	var series []chart.Series
	var allXs, allYs []float64
	for c := 0; c < cols; c++ {
		var xs, ys []float64
		for r := 0; r < rows; r++ {
			v := value(r, c)
			if isFinite(v) {
				xs = append(xs, float64(r))
				ys = append(ys, v)
			}
		}
		if len(xs) == 0 {
			continue
		}
		xs, ys = padSingle(xs, ys)
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("col %d", c),
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(theme.seriesColor(c)),
		})
		allXs = append(allXs, xs...)
		allYs = append(allYs, ys...)
	}
	if len(series) == 0 {
		return nil, errNoFinite
	}

	ch := themedChart(theme, width, height)
	ch.Series = series
	applyRanges(&ch, allXs, allYs)
	ch.Elements = []chart.Renderable{chart.Legend(&ch, chart.Style{
		FillColor:   theme.Background,
		FontColor:   theme.Text,
		StrokeColor: theme.Axis,
	})}
	return renderChart(ch)
}
