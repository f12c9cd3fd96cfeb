package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/neehar-mavuduru/deti-coin-analysis/csvreader"
	"github.com/neehar-mavuduru/deti-coin-analysis/stats"
)

// DefaultBaselineMarker identifies the reference implementation by name.
const DefaultBaselineMarker = "CPU"

// DefaultHistogramWidth is the bar width used when none is configured.
const DefaultHistogramWidth = 40

// Rank returns results ordered by attempts per second, fastest first. Ties
// keep file order.
func Rank(results csvreader.Results) csvreader.Results {
	ranked := make(csvreader.Results, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PerSecond > ranked[j].PerSecond
	})
	return ranked
}

// slowestOf returns the first implementation, in file order, with the lowest
// rate.
func slowestOf(results csvreader.Results) csvreader.Benchmark {
	slowest := results[0]
	for _, b := range results[1:] {
		if b.PerSecond < slowest.PerSecond {
			slowest = b
		}
	}
	return slowest
}

// Baseline returns the first implementation, in file order, whose name
// contains marker.
func Baseline(results csvreader.Results, marker string) (csvreader.Benchmark, bool) {
	for _, b := range results {
		if strings.Contains(b.Name, marker) {
			return b, true
		}
	}
	return csvreader.Benchmark{}, false
}

// BenchmarkComparison prints every implementation ranked by throughput, with
// its speedup over the baseline when one is present.
func (p *Printer) BenchmarkComparison(results csvreader.Results, marker string) {
	if len(results) == 0 {
		p.Warn("No benchmark results found")
		return
	}
	if marker == "" {
		marker = DefaultBaselineMarker
	}

	p.Banner("BENCHMARK COMPARISON")
	p.Printf("\n%-20s %-15s %-20s\n", "Implementation", "Attempts/Sec", "Attempts/Min")
	p.Printf("%s\n", strings.Repeat("-", ruleWidth))

	baseline, hasBaseline := Baseline(results, marker)
	for _, b := range Rank(results) {
		speedup := ""
		if hasBaseline && baseline.PerSecond > 0 {
			speedup = fmt.Sprintf(" (%.2fx)", b.PerSecond/baseline.PerSecond)
		}
		p.Printf("%-20s %-15.2e %-20.2e%s\n", b.Name, b.PerSecond, b.PerMinute, speedup)
	}
	p.Printf("%s\n", strings.Repeat("=", ruleWidth))
}

// Summary prints the closing overview: fastest and slowest implementation,
// and totals for the per-run kernel data when both columns are present.
func (p *Printer) Summary(results csvreader.Results, kernelTimes []float64, coinsFound []int64) {
	p.Banner("SUMMARY")

	if len(results) > 0 {
		fastest, slowest := Rank(results)[0], slowestOf(results)

		p.Printf("\nBenchmark:\n")
		p.Printf("  Fastest:  %s (%.2e attempts/sec)\n", fastest.Name, fastest.PerSecond)
		p.Printf("  Slowest:  %s (%.2e attempts/sec)\n", slowest.Name, slowest.PerSecond)
		if slowest.PerSecond > 0 {
			p.Printf("  Speedup:  %.2fx\n", fastest.PerSecond/slowest.PerSecond)
		} else {
			p.Printf("  Speedup:  n/a\n")
		}
	}

	if len(kernelTimes) > 0 && len(coinsFound) > 0 {
		timeStats := stats.Compute(kernelTimes)
		total := stats.Sum(coinsFound)

		p.Printf("\nCUDA Analysis (%d runs):\n", len(kernelTimes))
		p.Printf("  Total coins found: %d\n", total)
		p.Printf("  Avg coins/run: %.2f\n", float64(total)/float64(len(coinsFound)))
		p.Printf("  Avg kernel time: %.6f ms\n", timeStats.Mean)
		p.Printf("  Kernel time range: %.6f - %.6f ms\n", timeStats.Min, timeStats.Max)
	}
}
