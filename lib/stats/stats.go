// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Package stats computes descriptive statistics over array elements.
//
// All computations treat the input as a flat sequence of float64
// values. NaN elements are counted but excluded from min, mean,
// median, and max; infinite elements participate in those aggregates
// and propagate through them.
package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrNoValues is returned by Describe when the input contains no
// non-NaN elements (an empty array, or one that is entirely NaN).
// The aggregates are undefined in that case.
var ErrNoValues = errors.New("no non-NaN elements")

// Summary holds descriptive statistics for one array.
type Summary struct {
	// Min, Mean, Median, and Max are computed over the non-NaN
	// elements only.
	Min    float64
	Mean   float64
	Median float64
	Max    float64

	// Zero counts elements exactly equal to zero. NaN and infinite
	// elements are nonzero.
	Zero int

	// NaN counts NaN elements.
	NaN int

	// Inf counts infinite elements of either sign.
	Inf int
}

// welford is a running mean accumulator. Only finite values may be
// fed to it; the incremental update keeps the mean numerically stable
// without accumulating a raw sum that can overflow for large
// magnitudes.
type welford struct {
	count int
	mean  float64
}

func (w *welford) update(value float64) {
	w.count++
	delta := value - w.mean
	w.mean += delta / float64(w.count)
}

// Describe computes a Summary over values. It returns ErrNoValues
// when there are no non-NaN elements to aggregate.
func Describe(values []float64) (Summary, error) {
	var summary Summary
	var mean welford
	var posInf, negInf bool

	nonNaN := make([]float64, 0, len(values))
	for _, value := range values {
		switch {
		case math.IsNaN(value):
			summary.NaN++
			continue
		case math.IsInf(value, 1):
			summary.Inf++
			posInf = true
		case math.IsInf(value, -1):
			summary.Inf++
			negInf = true
		default:
			if value == 0 {
				summary.Zero++
			}
			mean.update(value)
		}
		nonNaN = append(nonNaN, value)
	}

	if len(nonNaN) == 0 {
		return Summary{}, ErrNoValues
	}

	sort.Float64s(nonNaN)
	summary.Min = nonNaN[0]
	summary.Max = nonNaN[len(nonNaN)-1]
	summary.Median = median(nonNaN)

	// Infinite elements dominate the mean: one sign alone propagates
	// that infinity, both signs cancel to NaN.
	switch {
	case posInf && negInf:
		summary.Mean = math.NaN()
	case posInf:
		summary.Mean = math.Inf(1)
	case negInf:
		summary.Mean = math.Inf(-1)
	default:
		summary.Mean = mean.mean
	}
	return summary, nil
}

// median returns the middle element of sorted values, or the average
// of the two middle elements for an even count.
func median(sorted []float64) float64 {
	middle := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[middle]
	}
	return (sorted[middle-1] + sorted[middle]) / 2
}
