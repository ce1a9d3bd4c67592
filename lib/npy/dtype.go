// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package npy

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/x448/float16"
)

// DType describes the element type of an array: a kind character, an
// element size in bytes, and a byte order. It covers the numeric
// scalar types NumPy writes — booleans, signed and unsigned integers,
// and IEEE floats. Structured, complex, string, and object descriptors
// are rejected at parse time.
type DType struct {
	// Kind is the NumPy kind character: 'b' (boolean), 'i' (signed
	// integer), 'u' (unsigned integer), or 'f' (float).
	Kind byte

	// Size is the element width in bytes.
	Size int

	// BigEndian is true for '>' descriptors. Single-byte types and
	// native-order descriptors are treated as little-endian.
	BigEndian bool
}

// elementSizes lists the valid element widths per kind character.
var elementSizes = map[byte][]int{
	'b': {1},
	'i': {1, 2, 4, 8},
	'u': {1, 2, 4, 8},
	'f': {2, 4, 8},
}

// ParseDType parses a NumPy descriptor string such as "<f8", ">i4",
// or "|b1". The leading byte-order character may be '<' (little), '>'
// (big), '|' (not applicable), or '=' (native, treated as little —
// files written on big-endian natives carry explicit '>' descriptors
// in practice).
func ParseDType(descr string) (DType, error) {
	if len(descr) < 2 {
		return DType{}, fmt.Errorf("unsupported dtype %q", descr)
	}

	var dtype DType
	rest := descr
	switch rest[0] {
	case '<', '|', '=':
		rest = rest[1:]
	case '>':
		dtype.BigEndian = true
		rest = rest[1:]
	}

	if len(rest) < 2 {
		return DType{}, fmt.Errorf("unsupported dtype %q", descr)
	}
	dtype.Kind = rest[0]

	sizes, ok := elementSizes[dtype.Kind]
	if !ok {
		return DType{}, fmt.Errorf("unsupported dtype %q", descr)
	}
	size := 0
	for _, digit := range rest[1:] {
		if digit < '0' || digit > '9' {
			return DType{}, fmt.Errorf("unsupported dtype %q", descr)
		}
		size = size*10 + int(digit-'0')
	}
	for _, valid := range sizes {
		if size == valid {
			dtype.Size = size
			return dtype, nil
		}
	}
	return DType{}, fmt.Errorf("unsupported dtype %q: invalid element size %d", descr, size)
}

// Name returns the NumPy scalar type name ("float64", "int32",
// "bool") used when the dtype is printed.
func (d DType) Name() string {
	switch d.Kind {
	case 'b':
		return "bool"
	case 'i':
		return fmt.Sprintf("int%d", d.Size*8)
	case 'u':
		return fmt.Sprintf("uint%d", d.Size*8)
	case 'f':
		return fmt.Sprintf("float%d", d.Size*8)
	}
	return fmt.Sprintf("%c%d", d.Kind, d.Size)
}

// String returns the same form as Name.
func (d DType) String() string { return d.Name() }

// Descr returns the descriptor string written to file headers, always
// with an explicit byte-order character ("<f8", ">i4", "|b1").
func (d DType) Descr() string {
	order := "<"
	if d.Size == 1 {
		order = "|"
	} else if d.BigEndian {
		order = ">"
	}
	return fmt.Sprintf("%s%c%d", order, d.Kind, d.Size)
}

// byteOrder returns the binary byte order for multi-byte decodes.
func (d DType) byteOrder() binary.ByteOrder {
	if d.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// decode converts one raw element to float64. raw must hold at least
// Size bytes.
func (d DType) decode(raw []byte) float64 {
	order := d.byteOrder()
	switch d.Kind {
	case 'b':
		if raw[0] != 0 {
			return 1
		}
		return 0
	case 'i':
		switch d.Size {
		case 1:
			return float64(int8(raw[0]))
		case 2:
			return float64(int16(order.Uint16(raw)))
		case 4:
			return float64(int32(order.Uint32(raw)))
		case 8:
			return float64(int64(order.Uint64(raw)))
		}
	case 'u':
		switch d.Size {
		case 1:
			return float64(raw[0])
		case 2:
			return float64(order.Uint16(raw))
		case 4:
			return float64(order.Uint32(raw))
		case 8:
			return float64(order.Uint64(raw))
		}
	case 'f':
		switch d.Size {
		case 2:
			return float64(float16.Frombits(order.Uint16(raw)).Float32())
		case 4:
			return float64(math.Float32frombits(order.Uint32(raw)))
		case 8:
			return math.Float64frombits(order.Uint64(raw))
		}
	}
	panic(fmt.Sprintf("npy: decode of unvalidated dtype %c%d", d.Kind, d.Size))
}

// IsFloat reports whether elements are IEEE floats. Integer and
// boolean arrays never contain NaN or infinities, and they print
// without decimal points.
func (d DType) IsFloat() bool { return d.Kind == 'f' }

// IsBool reports whether elements are booleans.
func (d DType) IsBool() bool { return d.Kind == 'b' }
