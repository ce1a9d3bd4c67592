// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Package window displays a rendered image in a desktop window.
package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Show opens a window displaying img and blocks until it closes.
// Escape and Q close the window, as does the window manager's close
// button. Small images are upscaled to a visible size; the logical
// canvas keeps the image's own dimensions so pixels stay crisp.
func Show(title string, img image.Image) error {
	bounds := img.Bounds()
	scale := displayScale(bounds.Dx(), bounds.Dy())

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(bounds.Dx()*scale, bounds.Dy()*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(&game{src: img})
}

// displayScale picks an integer upscale factor so a few-pixel heatmap
// opens at a visible size. Chart-sized images display 1:1.
func displayScale(w, h int) int {
	scale := 1
	for scale < 32 &&
		w*scale*2 <= 1024 && h*scale*2 <= 1024 &&
		(w*scale < 256 || h*scale < 256) {
		scale *= 2
	}
	return scale
}

type game struct {
	src    image.Image
	canvas *ebiten.Image
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.canvas, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	bounds := g.src.Bounds()
	return bounds.Dx(), bounds.Dy()
}
