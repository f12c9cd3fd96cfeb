package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/neehar-mavuduru/deti-coin-analysis/chart"
	"github.com/neehar-mavuduru/deti-coin-analysis/config"
	"github.com/neehar-mavuduru/deti-coin-analysis/demo"
	"github.com/neehar-mavuduru/deti-coin-analysis/extract"
	"github.com/neehar-mavuduru/deti-coin-analysis/report"
	"github.com/neehar-mavuduru/deti-coin-analysis/stats"
)

func newKernelTimesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kernel-times [log-file]",
		Short: "Histogram of KERNEL_TIME values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts, config.DefaultKernelTimeConfig())
			if err != nil {
				return err
			}
			return runKernelTimes(cmd.Context(), cmd.OutOrStdout(), cfg, args, opts.text)
		},
	}
	cmd.Flags().BoolVar(&opts.text, "text", false, "print statistics and an ASCII histogram instead of writing a PNG")
	return cmd
}

func runKernelTimes(ctx context.Context, out io.Writer, cfg config.Config, args []string, text bool) error {
	printer := report.NewPrinter(out)

	times := collect(ctx, out, cfg, args, extract.KernelTime, demo.KernelTimes,
		"Generating dummy data to show plot capabilities...")
	if len(times) == 0 {
		printer.Printf("Could not obtain data.\n")
		return nil
	}

	s := stats.Compute(times)
	printer.Printf("Collected %d data points.\n", s.Count)
	printer.Printf("Min: %.2f ms, Max: %.2f ms\n", s.Min, s.Max)

	if text {
		report.PrintStats(out, "Kernel Execution Times (ms)", s)
		report.TextHistogram(out, times, cfg.HistogramBins, barWidth(cfg, out))
		return nil
	}

	if err := chart.KernelTimes(times, chart.DefaultConfig(cfg.OutputFile)); err != nil {
		return err
	}
	printer.Printf("Histogram saved to %s\n", cfg.OutputFile)
	uploadArtifacts(ctx, printer, cfg, cfg.OutputFile)
	return nil
}
