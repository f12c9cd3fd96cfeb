package main

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neehar-mavuduru/deti-coin-analysis/config"
	"github.com/neehar-mavuduru/deti-coin-analysis/csvreader"
	"github.com/neehar-mavuduru/deti-coin-analysis/report"
	"github.com/neehar-mavuduru/deti-coin-analysis/stats"
)

func newResultsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "results [dir]",
		Short: "Text report of benchmark_results.csv and cuda_histogram.csv",
		Long: "Compares implementations from benchmark_results.csv and summarises the per-run\n" +
			"kernel times and coin counts from cuda_histogram.csv. Both files are looked up\n" +
			"in dir, or the current directory when dir is omitted.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts, config.DefaultResultsConfig())
			if err != nil {
				return err
			}
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			runResults(cmd.OutOrStdout(), cfg, dir)
			return nil
		},
	}
}

func runResults(out io.Writer, cfg config.Config, dir string) {
	p := report.NewPrinter(out)
	width := barWidth(cfg, out)

	p.Banner("DETI Coin Search - Results Analysis")

	p.Section("1. BENCHMARK RESULTS")
	results := csvreader.ReadBenchmarks(resolve(dir, cfg.BenchmarkCSV))
	if results != nil {
		p.BenchmarkComparison(results, cfg.BaselineMarker)
		p.Printf("\n")
		p.OK("Benchmark data loaded")
	} else {
		p.Warn("No benchmark results found")
		p.Printf("  Run: ./benchmark_all\n")
	}

	p.Section("2. CUDA HISTOGRAM ANALYSIS")
	kernelTimes, coinsFound := csvreader.ReadHistogram(resolve(dir, cfg.HistogramCSV))
	if kernelTimes != nil {
		report.PrintStats(out, "Kernel Execution Times (ms)", stats.Compute(kernelTimes))
		report.TextHistogram(out, kernelTimes, cfg.HistogramBins, width)
		p.Printf("\n")
		p.OK("Kernel timing data loaded (%d samples)", len(kernelTimes))
	} else {
		p.Warn("No CUDA histogram found")
		p.Printf("  Run: ./cuda_histogram\n")
	}

	if coinsFound != nil {
		report.PrintStats(out, "Coins Found Per Run", stats.Compute(coinsFound))
		report.TextHistogram(out, coinsFound, coinBins(coinsFound), width)
		p.Printf("\n")
		p.OK("Coins data loaded (%d runs)", len(coinsFound))
	} else {
		p.Warn("No coins histogram found")
	}

	p.Summary(results, kernelTimes, coinsFound)

	p.Printf("\n")
	p.Rule()
	p.OK("Analysis complete")
	p.Rule()
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
