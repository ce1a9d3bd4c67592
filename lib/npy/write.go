// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package npy

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// Marshal serializes an array as a version 1 NPY byte stream (version
// 2 when the header outgrows the version 1 length field). Data is
// written in row-major order whatever the source layout, so views
// round-trip with their logical element order.
func Marshal(a *Array) ([]byte, error) {
	header := encodeHeader(a.dtype, a.shape)
	need := a.SizeBytes()
	buf := make([]byte, 0, len(header)+need)
	buf = append(buf, header...)

	if a.contiguousC() {
		return append(buf, a.data[:need]...), nil
	}
	itemSize := a.dtype.Size
	for flat := 0; flat < a.Size(); flat++ {
		offset := a.byteOffset(flat)
		buf = append(buf, a.data[offset:offset+itemSize]...)
	}
	return buf, nil
}

// Save writes an array to path in NPY format.
func Save(path string, a *Array) error {
	data, err := Marshal(a)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// FromFloat64s builds a heap-backed little-endian float64 array from
// values. With no shape the array is one-dimensional. It panics if
// the shape does not multiply out to len(values).
func FromFloat64s(values []float64, shape ...int) *Array {
	if len(shape) == 0 {
		shape = []int{len(values)}
	}
	size := 1
	for _, dim := range shape {
		size *= dim
	}
	if size != len(values) {
		panic(fmt.Sprintf("npy: FromFloat64s: %d values do not fill shape %s", len(values), FormatShape(shape)))
	}
	data := make([]byte, len(values)*8)
	for i, v := range values {
		binary.LittleEndian.PutUint64(data[i*8:], math.Float64bits(v))
	}
	return newArray(Header{
		DType: DType{Kind: 'f', Size: 8},
		Shape: shape,
	}, data, "")
}
