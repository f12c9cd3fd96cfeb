// Package chart renders sample sets as PNG histograms.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/neehar-mavuduru/deti-coin-analysis/stats"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no data to plot")

// Default output names.
const (
	KernelTimeFile = "kernel_time_histogram.png"
	CoinsFoundFile = "coins_found_histogram.png"
)

// KernelTimeBins is the bin count of the kernel time histogram.
const KernelTimeBins = 50

// MaxCoinBars caps the coin chart at one bar per integer count. Wider
// ranges are drawn as a histogram with this many fixed-width bins.
const MaxCoinBars = 1000

var (
	colorKernelBars = color.RGBA{R: 135, G: 206, B: 235, A: 180}
	colorCoinBars   = color.RGBA{R: 255, G: 165, B: 0, A: 180}
	colorMean       = color.RGBA{R: 219, G: 68, B: 55, A: 255}
	colorMedian     = color.RGBA{R: 15, G: 157, B: 88, A: 255}
)

// Config holds chart output settings.
type Config struct {
	OutputFile string
	Width      vg.Length
	Height     vg.Length
}

// DefaultConfig returns a 10x6 inch chart written to outputFile.
func DefaultConfig(outputFile string) Config {
	return Config{
		OutputFile: outputFile,
		Width:      10 * vg.Inch,
		Height:     6 * vg.Inch,
	}
}

func (c *Config) applyDefaults(file string) {
	if c.OutputFile == "" {
		c.OutputFile = file
	}
	if c.Width <= 0 {
		c.Width = 10 * vg.Inch
	}
	if c.Height <= 0 {
		c.Height = 6 * vg.Inch
	}
}

// KernelTimes plots the distribution of kernel execution times with dashed
// mean and median markers.
func KernelTimes(times []float64, cfg Config) error {
	if len(times) == 0 {
		return ErrNoData
	}
	cfg.applyDefaults(KernelTimeFile)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of CUDA Kernel Execution Times\n(N=%d samples)", len(times))
	p.X.Label.Text = "Execution Time (milliseconds)"
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(plotter.Values(times), KernelTimeBins)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	hist.FillColor = colorKernelBars
	hist.LineStyle.Color = color.Black
	p.Add(hist)

	var peak float64
	for _, b := range hist.Bins {
		peak = math.Max(peak, b.Weight)
	}

	s := stats.Compute(times)
	for _, m := range []struct {
		label string
		value float64
		color color.Color
	}{
		{fmt.Sprintf("Mean: %.2f ms", s.Mean), s.Mean, colorMean},
		{fmt.Sprintf("Median: %.2f ms", s.Median), s.Median, colorMedian},
	} {
		line, err := verticalLine(m.value, peak, m.color)
		if err != nil {
			return err
		}
		p.Add(line)
		p.Legend.Add(m.label, line)
	}
	p.Legend.Top = true

	return save(p, cfg)
}

// CoinCounts plots how many batches found each number of coins, one bar per
// integer count from the smallest to the largest observed.
func CoinCounts(counts []int64, cfg Config) error {
	lo, hi, ok := stats.MinMax(counts)
	if !ok {
		return ErrNoData
	}
	cfg.applyDefaults(CoinsFoundFile)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of Coins Found per Kernel Run\n(Total Batches: %d)", len(counts))
	p.X.Label.Text = "Number of Coins Found"
	p.Y.Label.Text = "Frequency (Number of Batches)"
	p.X.Tick.Marker = integerTicks{}

	var peak float64
	if span := uint64(hi) - uint64(lo); span < MaxCoinBars {
		freq := make(plotter.Values, span+1)
		for _, c := range counts {
			freq[uint64(c)-uint64(lo)]++
		}
		bars, err := plotter.NewBarChart(freq, vg.Points(20))
		if err != nil {
			return fmt.Errorf("build bar chart: %w", err)
		}
		bars.XMin = float64(lo)
		bars.Color = colorCoinBars
		bars.LineStyle.Color = color.Black
		p.Add(bars)
		for _, f := range freq {
			peak = math.Max(peak, f)
		}
	} else {
		slog.Debug("coin range too wide for one bar per count", "min", lo, "max", hi, "bins", MaxCoinBars)
		values := make(plotter.Values, len(counts))
		for i, c := range counts {
			values[i] = float64(c)
		}
		hist, err := plotter.NewHist(values, MaxCoinBars)
		if err != nil {
			return fmt.Errorf("build histogram: %w", err)
		}
		hist.FillColor = colorCoinBars
		hist.LineStyle.Color = color.Black
		p.Add(hist)
		for _, b := range hist.Bins {
			peak = math.Max(peak, b.Weight)
		}
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	total := stats.Sum(counts)
	note := fmt.Sprintf("Total Coins: %d\nMean per Batch: %.4f\nMax per Batch: %d",
		total, float64(total)/float64(len(counts)), hi)
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: float64(hi), Y: peak}},
		Labels: []string{note},
	})
	if err != nil {
		return fmt.Errorf("build annotation: %w", err)
	}
	p.Add(labels)

	return save(p, cfg)
}

func verticalLine(x, height float64, c color.Color) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: height}})
	if err != nil {
		return nil, fmt.Errorf("build marker line: %w", err)
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	return line, nil
}

func save(p *plot.Plot, cfg Config) error {
	if dir := filepath.Dir(cfg.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := p.Save(cfg.Width, cfg.Height, cfg.OutputFile); err != nil {
		return fmt.Errorf("failed to save %s: %w", cfg.OutputFile, err)
	}
	slog.Debug("chart saved", "file", cfg.OutputFile)
	return nil
}

// integerTicks labels only whole numbers on the axis.
type integerTicks struct{}

func (integerTicks) Ticks(min, max float64) []plot.Tick {
	lo, hi := math.Ceil(min), math.Floor(max)
	step := math.Max(1, math.Ceil((hi-lo)/10))
	var ticks []plot.Tick
	for v := lo; v <= hi; v += step {
		ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf("%d", int64(v))})
	}
	return ticks
}
