// Command detistat analyses the output of the DETI coin search benchmarks:
// kernel execution times, coins found per batch and the cross-implementation
// throughput comparison.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/neehar-mavuduru/deti-coin-analysis/config"
)

// options mirrors the command-line flags. Only flags the user set override
// the defaults and the config file.
type options struct {
	configPath   string
	verbose      bool
	runBinary    bool
	execPath     string
	execArgs     []string
	logFile      string
	output       string
	bins         int
	width        int
	baseline     string
	seed         uint64
	uploadBucket string
	uploadPrefix string
	text         bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "detistat",
		Short:        "Statistics and histograms for DETI coin search benchmark output",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&opts.runBinary, "run-binary", false, "run the benchmark executable and parse its stdout")
	pf.StringVar(&opts.execPath, "exec", "", "benchmark executable path")
	pf.StringArrayVar(&opts.execArgs, "exec-arg", nil, "argument passed to the executable (repeatable)")
	pf.StringVar(&opts.logFile, "log-file", "", "log file read when no argument is given")
	pf.StringVarP(&opts.output, "output", "o", "", "output PNG path")
	pf.IntVar(&opts.bins, "bins", 0, "ASCII histogram buckets")
	pf.IntVar(&opts.width, "width", 0, "ASCII histogram bar width (0 fits the terminal)")
	pf.StringVar(&opts.baseline, "baseline", "", "substring identifying the baseline implementation")
	pf.Uint64Var(&opts.seed, "seed", 0, "seed for demo data")
	pf.StringVar(&opts.uploadBucket, "upload-bucket", "", "upload generated charts to this GCS bucket")
	pf.StringVar(&opts.uploadPrefix, "upload-prefix", "", "object prefix for uploaded charts")

	rootCmd.AddCommand(
		newKernelTimesCmd(opts),
		newCoinsCmd(opts),
		newResultsCmd(opts),
	)
	return rootCmd
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *options, base config.Config) (config.Config, error) {
	cfg := base
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath, base)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("run-binary") {
		cfg.RunBinary = opts.runBinary
	}
	if flags.Changed("exec") {
		cfg.ExecutablePath = opts.execPath
	}
	if flags.Changed("exec-arg") {
		cfg.ExecutableArgs = opts.execArgs
	}
	if flags.Changed("log-file") {
		cfg.LogFilePath = opts.logFile
	}
	if flags.Changed("output") {
		cfg.OutputFile = opts.output
	}
	if flags.Changed("bins") {
		cfg.HistogramBins = opts.bins
	}
	if flags.Changed("width") {
		cfg.HistogramWidth = opts.width
	}
	if flags.Changed("baseline") {
		cfg.BaselineMarker = opts.baseline
	}
	if flags.Changed("seed") {
		cfg.DemoSeed = opts.seed
	}
	if flags.Changed("upload-bucket") {
		upload := config.DefaultUploadConfig(opts.uploadBucket)
		if cfg.Upload != nil {
			upload = *cfg.Upload
			upload.Bucket = opts.uploadBucket
		}
		cfg.Upload = &upload
	}
	if flags.Changed("upload-prefix") && cfg.Upload != nil {
		cfg.Upload.ObjectPrefix = opts.uploadPrefix
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
