// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Package table renders ordered label/value pairs as a bordered
// two-column text table.
package table

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Row is one label/value pair in a table.
type Row struct {
	Label string
	Value string
}

// Render formats rows as a bordered two-column table. Column widths
// are the maximum label width and the maximum value width; every line
// of the output has the same length. The result carries no trailing
// newline.
//
// Rendering an empty table is an error: the column widths are derived
// from the rows, so there is nothing to size an empty table against.
func Render(rows []Row) (string, error) {
	if len(rows) == 0 {
		return "", fmt.Errorf("empty table: at least one row required")
	}

	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if width := utf8.RuneCountInString(row.Label); width > labelWidth {
			labelWidth = width
		}
		if width := utf8.RuneCountInString(row.Value); width > valueWidth {
			valueWidth = width
		}
	}

	border := "+" + strings.Repeat("-", labelWidth+2) + "+" + strings.Repeat("-", valueWidth+2) + "+"

	var builder strings.Builder
	builder.WriteString(border)
	for _, row := range rows {
		builder.WriteByte('\n')
		builder.WriteString("| ")
		builder.WriteString(pad(row.Label, labelWidth))
		builder.WriteString(" | ")
		builder.WriteString(pad(row.Value, valueWidth))
		builder.WriteString(" |")
	}
	builder.WriteByte('\n')
	builder.WriteString(border)
	return builder.String(), nil
}

// pad left-aligns s in a field of the given rune width.
func pad(s string, width int) string {
	if padding := width - utf8.RuneCountInString(s); padding > 0 {
		return s + strings.Repeat(" ", padding)
	}
	return s
}
