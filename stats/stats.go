// Package stats computes descriptive statistics over benchmark sample sets.
package stats

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// Number is any sample type the toolkit extracts: kernel times are floats,
// coin counts are integers.
type Number interface {
	constraints.Integer | constraints.Float
}

// Summary holds the fixed-shape statistics derived from one sample set.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64 // population standard deviation
	P25    float64
	P75    float64
	P95    float64
}

// Compute returns the statistics of data, or nil when data is empty.
// The caller's slice is never reordered.
//
// Median is the upper-middle element of the sorted samples (sorted[n/2]),
// not the average of the two middle elements for even n.
func Compute[T Number](data []T) *Summary {
	n := len(data)
	if n == 0 {
		return nil
	}

	sorted := make([]float64, n)
	for i, v := range data {
		sorted[i] = float64(v)
	}
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	var sq float64
	for _, v := range sorted {
		d := v - mean
		sq += d * d
	}

	return &Summary{
		Count:  n,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   mean,
		Median: sorted[n/2],
		StdDev: math.Sqrt(sq / float64(n)),
		P25:    Percentile(sorted, 0.25),
		P75:    Percentile(sorted, 0.75),
		P95:    Percentile(sorted, 0.95),
	}
}

// Percentile returns sorted[floor(p*n)], clamped to the last element.
// sorted must be ascending and non-empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	idx := int(p * float64(n))
	if idx > n-1 {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

// Sum totals the samples in their native type.
func Sum[T Number](data []T) T {
	var total T
	for _, v := range data {
		total += v
	}
	return total
}

// MinMax returns the smallest and largest sample. ok is false for empty input.
func MinMax[T Number](data []T) (lo, hi T, ok bool) {
	if len(data) == 0 {
		return lo, hi, false
	}
	lo, hi = data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, true
}
