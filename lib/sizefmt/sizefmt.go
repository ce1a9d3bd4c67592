// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Package sizefmt formats byte counts as short human-readable strings
// using decimal (1000-based) unit prefixes: "", K, M, G, T, P, E, Z, Y.
package sizefmt

import (
	"fmt"
	"math"
)

// prefixes are the decimal unit prefixes tried in order. Yotta is not
// listed: it is the saturation prefix applied when the magnitude
// exceeds the zetta range.
var prefixes = []string{"", "K", "M", "G", "T", "P", "E", "Z"}

// Format renders num with one decimal digit and the smallest decimal
// prefix that brings its magnitude below 1000, followed by suffix.
// Format(800, "B") is "800.0B"; Format(1500000, "") is "1.5M".
//
// Magnitudes beyond the zetta range saturate at the Y prefix: the
// value is divided by 1000 at most eight times, and whatever remains
// is printed with Y regardless of size.
func Format(num float64, suffix string) string {
	for _, prefix := range prefixes {
		if math.Abs(num) < 1000.0 {
			return fmt.Sprintf("%.1f%s%s", num, prefix, suffix)
		}
		num /= 1000.0
	}
	return fmt.Sprintf("%.1fY%s", num, suffix)
}

// Bytes formats a byte count with the "B" suffix. This is the form
// used for file sizes in the array info table.
func Bytes(count int) string {
	return Format(float64(count), "B")
}
