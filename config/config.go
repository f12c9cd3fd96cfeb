// Package config holds the settings shared by the analysis commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults taken from the benchmark tooling layout.
const (
	DefaultExecutablePath = "./search_cuda"
	DefaultLogFilePath    = "output.log"
	DefaultHistogramCSV   = "cuda_histogram.csv"
	DefaultBenchmarkCSV   = "benchmark_results.csv"
	DefaultBaselineMarker = "CPU"
	DefaultHistogramBins  = 20
	DefaultHistogramWidth = 40
	DefaultDemoSeed       = 1
)

// Config controls where samples come from and where output goes.
type Config struct {
	// Input
	RunBinary      bool     `yaml:"run_binary"`      // run the executable instead of reading a log
	ExecutablePath string   `yaml:"executable_path"` // benchmark binary
	ExecutableArgs []string `yaml:"executable_args"`
	LogFilePath    string   `yaml:"log_file_path"`   // default log when no argument is given
	HistogramCSV   string   `yaml:"histogram_csv"`
	BenchmarkCSV   string   `yaml:"benchmark_csv"`

	// Output
	OutputFile     string `yaml:"output_file"`     // PNG path
	HistogramBins  int    `yaml:"histogram_bins"`  // ASCII histogram buckets
	HistogramWidth int    `yaml:"histogram_width"` // 0 = fit terminal
	BaselineMarker string `yaml:"baseline_marker"` // substring naming the reference implementation

	DemoSeed uint64 `yaml:"demo_seed"`

	Upload *UploadConfig `yaml:"upload"` // optional artifact upload
}

// UploadConfig holds the GCS destination for generated charts.
type UploadConfig struct {
	Bucket       string        `yaml:"bucket"`        // GCS bucket name (required)
	ObjectPrefix string        `yaml:"object_prefix"` // e.g. "runs/2025-01-01/"
	Endpoint     string        `yaml:"endpoint"`      // override, e.g. a local emulator
	MaxRetries   int           `yaml:"max_retries"`   // default: 3
	RetryDelay   time.Duration `yaml:"retry_delay"`   // default: 5s
	GRPCPoolSize int           `yaml:"grpc_pool_size"`
}

// DefaultKernelTimeConfig returns the settings for the kernel time histogram.
func DefaultKernelTimeConfig() Config {
	return Config{
		ExecutablePath: DefaultExecutablePath,
		ExecutableArgs: []string{"-s", "TEST", "100"},
		LogFilePath:    DefaultLogFilePath,
		OutputFile:     "kernel_time_histogram.png",
		HistogramBins:  DefaultHistogramBins,
		HistogramWidth: DefaultHistogramWidth,
		BaselineMarker: DefaultBaselineMarker,
		DemoSeed:       DefaultDemoSeed,
	}
}

// DefaultCoinsConfig returns the settings for the coins-found histogram.
func DefaultCoinsConfig() Config {
	cfg := DefaultKernelTimeConfig()
	cfg.ExecutableArgs = []string{"1000"}
	cfg.OutputFile = "coins_found_histogram.png"
	return cfg
}

// DefaultResultsConfig returns the settings for the combined text report.
func DefaultResultsConfig() Config {
	cfg := DefaultKernelTimeConfig()
	cfg.HistogramCSV = DefaultHistogramCSV
	cfg.BenchmarkCSV = DefaultBenchmarkCSV
	cfg.OutputFile = ""
	return cfg
}

// DefaultUploadConfig returns an upload configuration with defaults.
func DefaultUploadConfig(bucket string) UploadConfig {
	return UploadConfig{
		Bucket:       bucket,
		MaxRetries:   3,
		RetryDelay:   5 * time.Second,
		GRPCPoolSize: 4,
	}
}

// Load overlays the YAML file at path onto base. Fields absent from the file
// keep their base values.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration and applies defaults where needed.
func (c *Config) Validate() error {
	if c.RunBinary && c.ExecutablePath == "" {
		return errors.New("executable_path is required when run_binary is set")
	}

	if c.LogFilePath == "" {
		c.LogFilePath = DefaultLogFilePath
	}

	if c.HistogramBins <= 0 {
		c.HistogramBins = DefaultHistogramBins
	}

	if c.HistogramWidth < 0 {
		return fmt.Errorf("histogram_width must not be negative, got %d", c.HistogramWidth)
	}

	if c.BaselineMarker == "" {
		c.BaselineMarker = DefaultBaselineMarker
	}

	if c.Upload != nil {
		if err := c.Upload.Validate(); err != nil {
			return fmt.Errorf("upload config: %w", err)
		}
	}

	return nil
}

// Validate checks the upload configuration and applies defaults.
func (u *UploadConfig) Validate() error {
	if u.Bucket == "" {
		return errors.New("bucket name is required")
	}

	if u.MaxRetries < 0 {
		u.MaxRetries = 0
	}

	if u.RetryDelay <= 0 {
		u.RetryDelay = 5 * time.Second
	}

	if u.GRPCPoolSize <= 0 {
		u.GRPCPoolSize = 4
	}

	return nil
}
