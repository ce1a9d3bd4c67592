// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package npy

import (
	"fmt"
	"math"
	"runtime/debug"

	"golang.org/x/sys/unix"
)

// Array is a read-only view of NPY array data. The element bytes stay
// in their on-disk encoding; accessors decode individual elements to
// float64 on demand. Arrays returned by Open are backed by a file
// mapping and must be closed; views created by Squeeze and Transpose
// share the base array's data and do not own the mapping.
type Array struct {
	dtype   DType
	shape   []int
	strides []int // byte strides per axis
	data    []byte
	mapping []byte // whole-file mapping, nil for heap-backed arrays
	mapped  bool   // data is file-mapped; views keep this while mapping stays with the base
	path    string
}

// newArray builds an array over data, which must hold at least
// Size*ItemSize bytes laid out in the header's storage order.
func newArray(header Header, data []byte, path string) *Array {
	shape := append([]int(nil), header.Shape...)
	return &Array{
		dtype:   header.DType,
		shape:   shape,
		strides: stridesFor(shape, header.DType.Size, header.FortranOrder),
		data:    data,
		path:    path,
	}
}

// stridesFor computes byte strides for a contiguous layout. Fortran
// order varies the first axis fastest, C order the last.
func stridesFor(shape []int, itemSize int, fortran bool) []int {
	strides := make([]int, len(shape))
	stride := itemSize
	if fortran {
		for axis := 0; axis < len(shape); axis++ {
			strides[axis] = stride
			stride *= shape[axis]
		}
	} else {
		for axis := len(shape) - 1; axis >= 0; axis-- {
			strides[axis] = stride
			stride *= shape[axis]
		}
	}
	return strides
}

// shapeSize returns the element count for a shape, guarding against
// products that overflow int.
func shapeSize(shape []int) (int, error) {
	size := 1
	for _, dim := range shape {
		if dim != 0 && size > math.MaxInt/dim {
			return 0, fmt.Errorf("shape %s is too large", FormatShape(shape))
		}
		size *= dim
	}
	return size, nil
}

// DType returns the element type.
func (a *Array) DType() DType { return a.dtype }

// Shape returns a copy of the array dimensions.
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Rank returns the number of dimensions. Scalars have rank 0.
func (a *Array) Rank() int { return len(a.shape) }

// Size returns the total element count, the product of the shape.
func (a *Array) Size() int {
	size := 1
	for _, dim := range a.shape {
		size *= dim
	}
	return size
}

// ItemSize returns the size of one element in bytes.
func (a *Array) ItemSize() int { return a.dtype.Size }

// SizeBytes returns the size of the element data in bytes.
func (a *Array) SizeBytes() int { return a.Size() * a.dtype.Size }

// At decodes the element at the given multidimensional index. It
// panics if the number of indices does not match the rank or an index
// is out of range.
func (a *Array) At(indices ...int) float64 {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("npy: At with %d indices on rank-%d array", len(indices), len(a.shape)))
	}
	offset := 0
	for axis, index := range indices {
		if index < 0 || index >= a.shape[axis] {
			panic(fmt.Sprintf("npy: index %d out of range for axis %d with size %d", index, axis, a.shape[axis]))
		}
		offset += index * a.strides[axis]
	}
	return a.dtype.decode(a.data[offset:])
}

// Index decodes the element at a flat index in row-major (C) order,
// regardless of how the data is stored. It panics if the index is out
// of range.
func (a *Array) Index(flat int) float64 {
	if flat < 0 || flat >= a.Size() {
		panic(fmt.Sprintf("npy: flat index %d out of range for size %d", flat, a.Size()))
	}
	return a.dtype.decode(a.data[a.byteOffset(flat):])
}

// byteOffset maps a row-major flat index to a byte offset through the
// stride table.
func (a *Array) byteOffset(flat int) int {
	offset := 0
	remainder := flat
	for axis := len(a.shape) - 1; axis >= 0; axis-- {
		dim := a.shape[axis]
		offset += (remainder % dim) * a.strides[axis]
		remainder /= dim
	}
	return offset
}

// Float64s decodes every element to float64 in row-major order.
func (a *Array) Float64s() []float64 {
	values := make([]float64, a.Size())
	for i := range values {
		values[i] = a.Index(i)
	}
	return values
}

// Squeeze returns a view with all length-1 axes removed. Squeezing an
// array whose axes are all length 1 yields a rank-0 view of the same
// single element.
func (a *Array) Squeeze() *Array {
	view := *a
	view.shape = nil
	view.strides = nil
	view.mapping = nil
	for axis, dim := range a.shape {
		if dim == 1 {
			continue
		}
		view.shape = append(view.shape, dim)
		view.strides = append(view.strides, a.strides[axis])
	}
	return &view
}

// Transpose returns a view with axes rearranged so that axis i of the
// view is axis order[i] of the receiver. It panics unless order is a
// permutation of the receiver's axes.
func (a *Array) Transpose(order ...int) *Array {
	if len(order) != len(a.shape) {
		panic(fmt.Sprintf("npy: Transpose with %d axes on rank-%d array", len(order), len(a.shape)))
	}
	seen := make([]bool, len(order))
	for _, axis := range order {
		if axis < 0 || axis >= len(order) || seen[axis] {
			panic(fmt.Sprintf("npy: Transpose order %v is not a permutation", order))
		}
		seen[axis] = true
	}
	view := *a
	view.mapping = nil
	view.shape = make([]int, len(order))
	view.strides = make([]int, len(order))
	for i, axis := range order {
		view.shape[i] = a.shape[axis]
		view.strides[i] = a.strides[axis]
	}
	return &view
}

// contiguousC reports whether the data is laid out contiguously in
// row-major order, allowing serialization to copy it wholesale.
func (a *Array) contiguousC() bool {
	stride := a.dtype.Size
	for axis := len(a.shape) - 1; axis >= 0; axis-- {
		if a.strides[axis] != stride {
			return false
		}
		stride *= a.shape[axis]
	}
	return true
}

// Guarded runs read with page faults on the file mapping converted
// into an error. A file truncated by another process while mapped
// faults on the first access past the new end; without the guard the
// fault kills the process. Heap-backed arrays cannot fault and run
// read directly. On error, anything read produced before the fault is
// unspecified.
func (a *Array) Guarded(read func()) (err error) {
	if !a.mapped {
		read()
		return nil
	}
	old := debug.SetPanicOnFault(true)
	defer func() {
		debug.SetPanicOnFault(old)
		if r := recover(); r != nil {
			err = fmt.Errorf("reading %s: page fault: %v", a.path, r)
		}
	}()
	read()
	return nil
}

// Close releases the file mapping backing an array returned by Open.
// It is a no-op for heap-backed arrays and views, and safe to call
// more than once. Element accessors must not be used after Close.
func (a *Array) Close() error {
	if a.mapping == nil {
		return nil
	}
	mapping := a.mapping
	a.mapping = nil
	a.data = nil
	if err := unix.Munmap(mapping); err != nil {
		return fmt.Errorf("unmapping %s: %w", a.path, err)
	}
	return nil
}
