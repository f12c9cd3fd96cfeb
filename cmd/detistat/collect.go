package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/neehar-mavuduru/deti-coin-analysis/config"
	"github.com/neehar-mavuduru/deti-coin-analysis/extract"
	gcsuploader "github.com/neehar-mavuduru/deti-coin-analysis/gcs_uploader"
	"github.com/neehar-mavuduru/deti-coin-analysis/report"
	"github.com/neehar-mavuduru/deti-coin-analysis/runner"
	"github.com/neehar-mavuduru/deti-coin-analysis/stats"
)

// collect gathers samples from, in order of preference: the file named on
// the command line, the executable's stdout, the default log file, and
// finally synthetic demo data.
func collect[T stats.Number](ctx context.Context, out io.Writer, cfg config.Config, args []string,
	p extract.Pattern[T], demoData func(seed uint64) []T, demoNote string) []T {

	if len(args) > 0 {
		return extract.Values(extract.FilePath(args[0]), p)
	}

	if cfg.RunBinary {
		lines := runner.Run(ctx, out, cfg.ExecutablePath, cfg.ExecutableArgs)
		return extract.Values(extract.Lines(lines), p)
	}

	fmt.Fprintf(out, "No arguments provided. Attempting to read from %s...\n", cfg.LogFilePath)
	data := extract.Values(extract.FilePath(cfg.LogFilePath), p)
	if len(data) == 0 {
		fmt.Fprintf(out, "\n[Demo Mode] No data found. %s\n", demoNote)
		data = demoData(cfg.DemoSeed)
	}
	return data
}

// uploadArtifacts copies the generated files to GCS when an upload bucket is
// configured. Failures are reported but do not fail the command.
func uploadArtifacts(ctx context.Context, printer *report.Printer, cfg config.Config, paths ...string) {
	if cfg.Upload == nil {
		return
	}

	uploader, err := gcsuploader.New(ctx, *cfg.Upload)
	if err != nil {
		printer.Warn("Upload skipped: %v", err)
		return
	}
	defer uploader.Close()

	if err := uploader.UploadFiles(ctx, paths...); err != nil {
		printer.Warn("Upload incomplete: %v", err)
		return
	}
	printer.OK("Uploaded %d file(s) to gs://%s", uploader.Stats().Successful, cfg.Upload.Bucket)
}

// barWidth resolves the histogram width against the terminal when out is one.
func barWidth(cfg config.Config, out io.Writer) int {
	f, _ := out.(*os.File)
	return report.BarWidth(cfg.HistogramWidth, f)
}
