package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/neehar-mavuduru/deti-coin-analysis/chart"
	"github.com/neehar-mavuduru/deti-coin-analysis/config"
	"github.com/neehar-mavuduru/deti-coin-analysis/demo"
	"github.com/neehar-mavuduru/deti-coin-analysis/extract"
	"github.com/neehar-mavuduru/deti-coin-analysis/report"
	"github.com/neehar-mavuduru/deti-coin-analysis/stats"
)

func newCoinsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins [log-file]",
		Short: "Histogram of COINS_FOUND per batch",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts, config.DefaultCoinsConfig())
			if err != nil {
				return err
			}
			return runCoins(cmd.Context(), cmd.OutOrStdout(), cfg, args, opts.text)
		},
	}
	cmd.Flags().BoolVar(&opts.text, "text", false, "print statistics and an ASCII histogram instead of writing a PNG")
	return cmd
}

func runCoins(ctx context.Context, out io.Writer, cfg config.Config, args []string, text bool) error {
	printer := report.NewPrinter(out)

	counts := collect(ctx, out, cfg, args, extract.CoinsFound, demo.CoinCounts,
		"Generating dummy Poisson-like data...")
	if len(counts) == 0 {
		printer.Printf("Could not obtain data.\n")
		return nil
	}

	if n := extract.NegativeCount(counts); n > 0 {
		slog.Warn("negative coin counts in input", "count", n)
	}
	printer.Printf("Processed %d batches.\n", len(counts))

	if text {
		report.PrintStats(out, "Coins Found Per Run", stats.Compute(counts))
		report.TextHistogram(out, counts, coinBins(counts), barWidth(cfg, out))
		return nil
	}

	if err := chart.CoinCounts(counts, chart.DefaultConfig(cfg.OutputFile)); err != nil {
		return err
	}
	printer.Printf("Histogram saved to %s\n", cfg.OutputFile)
	uploadArtifacts(ctx, printer, cfg, cfg.OutputFile)
	return nil
}

// coinBins gives one bucket per unit of range, at least one and at most
// chart.MaxCoinBars.
func coinBins(counts []int64) int {
	lo, hi, _ := stats.MinMax(counts)
	return int(max(min(uint64(hi)-uint64(lo), chart.MaxCoinBars), 1))
}
