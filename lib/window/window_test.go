// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package window

import "testing"

func TestDisplayScale(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{1024, 640, 1}, // chart-sized, 1:1
		{640, 480, 1},
		{256, 256, 1},
		{200, 100, 4},  // stops when doubling would exceed 1024 wide
		{6, 10, 32},    // tiny heatmap hits the scale cap
		{100, 300, 2},  // the larger side limits the scale
		{2048, 2048, 1}, // oversized images are never downscaled
	}
	for _, tc := range tests {
		if got := displayScale(tc.w, tc.h); got != tc.want {
			t.Errorf("displayScale(%d, %d) = %d, want %d", tc.w, tc.h, got, tc.want)
		}
	}
}
