// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Package arrayfmt renders arrays in NumPy's bracketed text layout:
// innermost rows space-separated, nested blocks separated by blank
// lines matching their depth, long axes summarized with an ellipsis.
// Rows are never wrapped to a line width.
//
// All formatting state is passed explicitly through Options; there is
// no package-level configuration.
package arrayfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/npytools/npytools/lib/npy"
)

// Options controls array rendering.
type Options struct {
	// Precision is the number of digits after the decimal point for
	// float elements.
	Precision int

	// Suppress keeps small floats in positional notation. When false,
	// nonzero values below 1e-4 switch to scientific notation.
	Suppress bool

	// EdgeItems is the number of leading and trailing items shown per
	// summarized axis.
	EdgeItems int

	// Threshold is the element count above which axes are summarized.
	Threshold int
}

// DefaultOptions returns the rendering defaults: precision 4,
// suppression on, 2 edge items, threshold 50.
func DefaultOptions() Options {
	return Options{Precision: 4, Suppress: true, EdgeItems: 2, Threshold: 50}
}

// Format renders an array in NumPy text layout. Rank-0 arrays render
// as a bare scalar, empty arrays as "[]".
func Format(a *npy.Array, opts Options) string {
	f := &formatter{
		arr:       a,
		opts:      opts,
		shape:     a.Shape(),
		isFloat:   a.DType().IsFloat(),
		isBool:    a.DType().IsBool(),
		summarize: a.Size() > opts.Threshold,
	}
	if len(f.shape) == 0 {
		return f.element()
	}
	if a.Size() == 0 {
		return "[]"
	}

	f.measure(0)
	var b strings.Builder
	f.render(&b, 0)
	return b.String()
}

type formatter struct {
	arr       *npy.Array
	opts      Options
	shape     []int
	isFloat   bool
	isBool    bool
	summarize bool
	width     int
	index     []int // current position, grown axis by axis
}

// summarized reports whether the axis is shortened to edge items.
func (f *formatter) summarized(axis int) bool {
	return f.summarize && f.shape[axis] > 2*f.opts.EdgeItems
}

// measure computes the widest rendered element over the positions
// render will visit, so elements can be right-aligned. Summarized
// axes are measured over their edge items only, which also keeps
// mapped arrays from faulting in pages render never touches.
func (f *formatter) measure(axis int) {
	if axis == len(f.shape) {
		if w := len(f.element()); w > f.width {
			f.width = w
		}
		return
	}
	visit := func(i int) {
		f.index = append(f.index, i)
		f.measure(axis + 1)
		f.index = f.index[:len(f.index)-1]
	}
	if f.summarized(axis) {
		for i := 0; i < f.opts.EdgeItems; i++ {
			visit(i)
		}
		for i := f.shape[axis] - f.opts.EdgeItems; i < f.shape[axis]; i++ {
			visit(i)
		}
		return
	}
	for i := 0; i < f.shape[axis]; i++ {
		visit(i)
	}
}

func (f *formatter) render(b *strings.Builder, axis int) {
	b.WriteByte('[')
	last := axis == len(f.shape)-1

	// Separator between children: a space on the innermost axis,
	// otherwise depth-many newlines plus hanging indent under the
	// open brackets.
	separator := func() {
		if last {
			b.WriteByte(' ')
			return
		}
		for i := 0; i < len(f.shape)-axis-1; i++ {
			b.WriteByte('\n')
		}
		for i := 0; i <= axis; i++ {
			b.WriteByte(' ')
		}
	}
	child := func(i int) {
		f.index = append(f.index, i)
		if last {
			f.pad(b, f.element())
		} else {
			f.render(b, axis+1)
		}
		f.index = f.index[:len(f.index)-1]
	}

	if f.summarized(axis) {
		edge := f.opts.EdgeItems
		for i := 0; i < edge; i++ {
			if i > 0 {
				separator()
			}
			child(i)
		}
		if edge > 0 {
			separator()
		}
		b.WriteString("...")
		for i := f.shape[axis] - edge; i < f.shape[axis]; i++ {
			separator()
			child(i)
		}
	} else {
		for i := 0; i < f.shape[axis]; i++ {
			if i > 0 {
				separator()
			}
			child(i)
		}
	}
	b.WriteByte(']')
}

// pad writes s right-aligned to the measured element width.
func (f *formatter) pad(b *strings.Builder, s string) {
	for i := len(s); i < f.width; i++ {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}

// element renders the value at the current index position.
func (f *formatter) element() string {
	v := f.arr.At(f.index...)
	switch {
	case f.isBool:
		if v != 0 {
			return "True"
		}
		return "False"
	case !f.isFloat:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	if math.IsNaN(v) {
		return "nan"
	}
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	if !f.opts.Suppress && v != 0 && math.Abs(v) < 1e-4 {
		return strconv.FormatFloat(v, 'e', f.opts.Precision, 64)
	}
	s := strconv.FormatFloat(v, 'f', f.opts.Precision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
	} else {
		s += "."
	}
	return s
}
