// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package npy

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// magic is the six-byte NPY file signature.
const magic = "\x93NUMPY"

// headerAlign is the alignment the header is padded to. Data after
// the header then starts on a 64-byte boundary, which keeps mapped
// element access aligned for every element size.
const headerAlign = 64

// Header is the parsed NPY file header: the element type, the
// storage order of the data section, and the array shape.
type Header struct {
	DType        DType
	FortranOrder bool
	Shape        []int
}

// parseHeader parses the file prelude and header dict from data and
// returns the header together with the offset where the element data
// begins.
func parseHeader(data []byte) (Header, int, error) {
	if len(data) < len(magic)+2 {
		return Header{}, 0, fmt.Errorf("file too short for NPY magic")
	}
	if string(data[:len(magic)]) != magic {
		return Header{}, 0, fmt.Errorf("bad magic %q", data[:len(magic)])
	}

	major, minor := data[6], data[7]
	var headerStart, headerLength int
	switch major {
	case 1:
		// Version 1 carries a two-byte header length.
		if len(data) < 10 {
			return Header{}, 0, fmt.Errorf("file too short for version 1 header length")
		}
		headerLength = int(binary.LittleEndian.Uint16(data[8:10]))
		headerStart = 10
	case 2, 3:
		// Versions 2 and 3 widen the length field to four bytes.
		// Version 3 additionally allows UTF-8 in the header text,
		// which only matters for structured field names this
		// parser rejects anyway.
		if len(data) < 12 {
			return Header{}, 0, fmt.Errorf("file too short for version %d header length", major)
		}
		headerLength = int(binary.LittleEndian.Uint32(data[8:12]))
		headerStart = 12
	default:
		return Header{}, 0, fmt.Errorf("unsupported format version %d.%d", major, minor)
	}

	headerEnd := headerStart + headerLength
	if headerEnd > len(data) {
		return Header{}, 0, fmt.Errorf("header length %d exceeds file size %d", headerLength, len(data))
	}

	header, err := parseHeaderDict(string(data[headerStart:headerEnd]))
	if err != nil {
		return Header{}, 0, err
	}
	return header, headerEnd, nil
}

// parseHeaderDict parses the Python dict literal inside an NPY
// header: {'descr': '<f8', 'fortran_order': False, 'shape': (3, 4), }.
// All three keys are required; unknown keys are rejected.
func parseHeaderDict(text string) (Header, error) {
	parser := &dictParser{text: text}
	var header Header
	var sawDescr, sawOrder, sawShape bool

	parser.skipSpaces()
	if err := parser.expect('{'); err != nil {
		return Header{}, err
	}
	for {
		parser.skipSpaces()
		if parser.consume('}') {
			break
		}
		key, err := parser.quotedString()
		if err != nil {
			return Header{}, fmt.Errorf("header dict key: %w", err)
		}
		parser.skipSpaces()
		if err := parser.expect(':'); err != nil {
			return Header{}, err
		}
		parser.skipSpaces()

		switch key {
		case "descr":
			if parser.peek() == '[' {
				return Header{}, fmt.Errorf("structured dtypes are not supported")
			}
			descr, err := parser.quotedString()
			if err != nil {
				return Header{}, fmt.Errorf("descr value: %w", err)
			}
			header.DType, err = ParseDType(descr)
			if err != nil {
				return Header{}, err
			}
			sawDescr = true
		case "fortran_order":
			order, err := parser.pythonBool()
			if err != nil {
				return Header{}, fmt.Errorf("fortran_order value: %w", err)
			}
			header.FortranOrder = order
			sawOrder = true
		case "shape":
			shape, err := parser.tuple()
			if err != nil {
				return Header{}, fmt.Errorf("shape value: %w", err)
			}
			header.Shape = shape
			sawShape = true
		default:
			return Header{}, fmt.Errorf("unexpected header key %q", key)
		}

		parser.skipSpaces()
		parser.consume(',')
	}

	// Only padding may follow the dict.
	parser.skipSpaces()
	if parser.pos != len(parser.text) {
		return Header{}, fmt.Errorf("trailing data after header dict")
	}

	if !sawDescr || !sawOrder || !sawShape {
		return Header{}, fmt.Errorf("header dict is missing a required key (descr/fortran_order/shape)")
	}
	return header, nil
}

// dictParser is a cursor over the header dict text.
type dictParser struct {
	text string
	pos  int
}

func (p *dictParser) peek() byte {
	if p.pos >= len(p.text) {
		return 0
	}
	return p.text[p.pos]
}

func (p *dictParser) skipSpaces() {
	for p.pos < len(p.text) {
		switch p.text[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// consume advances past c if it is the next byte, reporting whether
// it did.
func (p *dictParser) consume(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *dictParser) expect(c byte) error {
	if !p.consume(c) {
		return fmt.Errorf("expected %q at header offset %d", c, p.pos)
	}
	return nil
}

// quotedString reads a single- or double-quoted string.
func (p *dictParser) quotedString() (string, error) {
	quote := p.peek()
	if quote != '\'' && quote != '"' {
		return "", fmt.Errorf("expected quoted string at header offset %d", p.pos)
	}
	p.pos++
	start := p.pos
	end := strings.IndexByte(p.text[start:], quote)
	if end < 0 {
		return "", fmt.Errorf("unterminated string at header offset %d", start)
	}
	p.pos = start + end + 1
	return p.text[start : start+end], nil
}

func (p *dictParser) pythonBool() (bool, error) {
	switch {
	case strings.HasPrefix(p.text[p.pos:], "True"):
		p.pos += len("True")
		return true, nil
	case strings.HasPrefix(p.text[p.pos:], "False"):
		p.pos += len("False")
		return false, nil
	}
	return false, fmt.Errorf("expected True or False at header offset %d", p.pos)
}

// tuple reads a tuple of non-negative integers: (), (3,), (3, 4).
func (p *dictParser) tuple() ([]int, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	dims := []int{}
	for {
		p.skipSpaces()
		if p.consume(')') {
			return dims, nil
		}
		dim, err := p.integer()
		if err != nil {
			return nil, err
		}
		dims = append(dims, dim)
		p.skipSpaces()
		if p.consume(',') {
			continue
		}
		if p.consume(')') {
			return dims, nil
		}
		return nil, fmt.Errorf("expected ',' or ')' at header offset %d", p.pos)
	}
}

func (p *dictParser) integer() (int, error) {
	start := p.pos
	value := 0
	for p.pos < len(p.text) && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
		digit := int(p.text[p.pos] - '0')
		if value > (math.MaxInt-digit)/10 {
			return 0, fmt.Errorf("dimension at header offset %d overflows", start)
		}
		value = value*10 + digit
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("expected integer at header offset %d", start)
	}
	return value, nil
}

// encodeHeader builds the complete file prelude and padded header
// dict for an array written in C order. Version 1 is used unless the
// padded dict outgrows the two-byte length field, in which case the
// prelude switches to version 2.
func encodeHeader(dtype DType, shape []int) []byte {
	dict := fmt.Sprintf("{'descr': '%s', 'fortran_order': False, 'shape': %s, }",
		dtype.Descr(), FormatShape(shape))

	// Total file prelude is magic + version + length field; the dict,
	// padding, and terminating newline round the whole header up to a
	// 64-byte boundary.
	prelude := len(magic) + 2 + 2
	total := (prelude + len(dict) + 1 + headerAlign - 1) / headerAlign * headerAlign
	version := byte(1)
	if total-prelude > math.MaxUint16 {
		version = 2
		prelude = len(magic) + 2 + 4
		total = (prelude + len(dict) + 1 + headerAlign - 1) / headerAlign * headerAlign
	}

	buf := make([]byte, 0, total)
	buf = append(buf, magic...)
	buf = append(buf, version, 0)
	if version == 1 {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(total-prelude))
	} else {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(total-prelude))
	}
	buf = append(buf, dict...)
	for len(buf) < total-1 {
		buf = append(buf, ' ')
	}
	return append(buf, '\n')
}

// FormatShape renders a shape in NumPy tuple notation: "()", "(100,)",
// "(10, 10)".
func FormatShape(shape []int) string {
	switch len(shape) {
	case 0:
		return "()"
	case 1:
		return fmt.Sprintf("(%d,)", shape[0])
	}
	parts := make([]string, len(shape))
	for i, dim := range shape {
		parts[i] = fmt.Sprint(dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
