// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package plot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Theme is a named set of chart colors.
type Theme struct {
	Name       string
	Background drawing.Color
	Canvas     drawing.Color
	Text       drawing.Color
	Axis       drawing.Color

	// Series colors, cycled when a chart has more series than entries.
	Series []drawing.Color
}

var themes = map[string]Theme{
	"dark": {
		Name:       "dark",
		Background: drawing.ColorFromHex("1e1e1e"),
		Canvas:     drawing.ColorFromHex("252526"),
		Text:       drawing.ColorFromHex("d4d4d4"),
		Axis:       drawing.ColorFromHex("808080"),
		Series: []drawing.Color{
			drawing.ColorFromHex("4fc1ff"),
			drawing.ColorFromHex("ff8c42"),
			drawing.ColorFromHex("73c991"),
			drawing.ColorFromHex("e06c75"),
			drawing.ColorFromHex("c586c0"),
		},
	},
	"light": {
		Name:       "light",
		Background: drawing.ColorWhite,
		Canvas:     drawing.ColorWhite,
		Text:       drawing.ColorFromHex("333333"),
		Axis:       drawing.ColorFromHex("666666"),
		Series: []drawing.Color{
			drawing.ColorFromHex("1f77b4"),
			drawing.ColorFromHex("ff7f0e"),
			drawing.ColorFromHex("2ca02c"),
			drawing.ColorFromHex("d62728"),
			drawing.ColorFromHex("9467bd"),
		},
	},
}

// ThemeByName looks up a theme. Valid names are "dark" and "light".
func ThemeByName(name string) (Theme, error) {
	theme, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
	return theme, nil
}

// seriesColor returns the color for series i, cycling the palette.
func (t Theme) seriesColor(i int) drawing.Color {
	return t.Series[i%len(t.Series)]
}

// background returns the theme background as an image color, used
// for NaN cells in heatmaps.
func (t Theme) background() color.NRGBA {
	return color.NRGBA{R: t.Background.R, G: t.Background.G, B: t.Background.B, A: 255}
}

// Colormap maps a normalized value in [0, 1] to a color through
// evenly spaced gradient stops.
type Colormap struct {
	Name  string
	stops []color.NRGBA
}

var colormaps = map[string]Colormap{
	// The five viridis anchor colors; intermediate values are
	// linearly interpolated.
	"viridis": {
		Name: "viridis",
		stops: []color.NRGBA{
			{R: 0x44, G: 0x01, B: 0x54, A: 255},
			{R: 0x3b, G: 0x52, B: 0x8b, A: 255},
			{R: 0x21, G: 0x91, B: 0x8c, A: 255},
			{R: 0x5e, G: 0xc9, B: 0x62, A: 255},
			{R: 0xfd, G: 0xe7, B: 0x25, A: 255},
		},
	},
	"gray": {
		Name: "gray",
		stops: []color.NRGBA{
			{R: 0x00, G: 0x00, B: 0x00, A: 255},
			{R: 0xff, G: 0xff, B: 0xff, A: 255},
		},
	},
}

// ColormapByName looks up a colormap. Valid names are "viridis" and
// "gray".
func ColormapByName(name string) (Colormap, error) {
	cmap, ok := colormaps[name]
	if !ok {
		return Colormap{}, fmt.Errorf("unknown colormap %q", name)
	}
	return cmap, nil
}

// At maps t in [0, 1] to a gradient color; values outside the range
// clamp to the ends.
func (c Colormap) At(t float64) color.NRGBA {
	if math.IsNaN(t) || t <= 0 {
		return c.stops[0]
	}
	if t >= 1 {
		return c.stops[len(c.stops)-1]
	}
	scaled := t * float64(len(c.stops)-1)
	low := int(scaled)
	frac := scaled - float64(low)
	a, b := c.stops[low], c.stops[low+1]
	return color.NRGBA{
		R: lerpByte(a.R, b.R, frac),
		G: lerpByte(a.G, b.G, frac),
		B: lerpByte(a.B, b.B, frac),
		A: 255,
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
