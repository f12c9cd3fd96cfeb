package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/neehar-mavuduru/deti-coin-analysis/stats"
)

// Bucket is one histogram bin covering [Start, End).
type Bucket struct {
	Start float64
	End   float64
	Count int
}

// Histogram is a fixed-width partition of [min, max].
type Histogram struct {
	Buckets  []Bucket
	MaxCount int
}

// Bucketize partitions data into bins equal-width buckets. NaN and infinite
// values are not counted. It returns false when no finite values remain or
// they are all the same, since no range exists to partition.
func Bucketize[T stats.Number](data []T, bins int) (Histogram, bool) {
	minVal, maxVal, ok := finiteRange(data)
	if !ok {
		return Histogram{}, false
	}
	rangeVal := maxVal - minVal
	if rangeVal == 0 {
		return Histogram{}, false
	}
	if bins < 1 {
		bins = 1
	}

	binWidth := rangeVal / float64(bins)
	counts := make([]int, bins)
	for _, v := range data {
		val := float64(v)
		if !isFinite(val) {
			continue
		}
		idx := bins - 1
		if val != maxVal {
			idx = int((val - minVal) / binWidth)
			if idx < 0 {
				continue
			}
			if idx >= bins {
				idx = bins - 1
			}
		}
		counts[idx]++
	}

	h := Histogram{Buckets: make([]Bucket, bins)}
	for i, c := range counts {
		start := minVal + float64(i)*binWidth
		h.Buckets[i] = Bucket{Start: start, End: start + binWidth, Count: c}
		if c > h.MaxCount {
			h.MaxCount = c
		}
	}
	return h, true
}

func finiteRange[T stats.Number](data []T) (lo, hi float64, ok bool) {
	for _, v := range data {
		val := float64(v)
		if !isFinite(val) {
			continue
		}
		if !ok {
			lo, hi, ok = val, val, true
			continue
		}
		lo = math.Min(lo, val)
		hi = math.Max(hi, val)
	}
	return lo, hi, ok
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// TextHistogram draws data as an ASCII bar chart, one line per bucket, with
// bars scaled so the fullest bucket spans width characters.
func TextHistogram[T stats.Number](w io.Writer, data []T, bins, width int) {
	if len(data) == 0 {
		return
	}
	h, ok := Bucketize(data, bins)
	if !ok {
		fmt.Fprintf(w, "All values are %v\n", data[0])
		return
	}
	if width < 1 {
		width = DefaultHistogramWidth
	}

	fmt.Fprintf(w, "\nHistogram:\n")
	for _, b := range h.Buckets {
		barWidth := int(float64(b.Count) / float64(h.MaxCount) * float64(width))
		bar := strings.Repeat("█", barWidth) + strings.Repeat(" ", width-barWidth)
		fmt.Fprintf(w, "  %8.4f-%8.4f │%s %4d\n", b.Start, b.End, bar, b.Count)
	}
}

// PrintStats writes s as a two-column table under name.
func PrintStats(w io.Writer, name string, s *stats.Summary) {
	fmt.Fprintf(w, "\n%s:\n", name)
	if s == nil {
		fmt.Fprintf(w, "  no data\n")
		return
	}
	fmt.Fprintf(w, "  %-15s %d\n", "Count", s.Count)
	rows := []struct {
		label string
		value float64
	}{
		{"Min", s.Min},
		{"Max", s.Max},
		{"Mean", s.Mean},
		{"Median", s.Median},
		{"StdDev", s.StdDev},
		{"P25", s.P25},
		{"P75", s.P75},
		{"P95", s.P95},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %-15s %.6f\n", r.label, r.value)
	}
}
