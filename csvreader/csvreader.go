// Package csvreader loads the CSV files written by the benchmark executables.
//
// Both readers fail softly: a missing or unreadable file is logged and
// reported as an absent result, and rows that lack a required column or fail
// numeric conversion are skipped.
package csvreader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
)

// Column names of the per-run histogram CSV.
const (
	ColKernelTime = "kernel_time_ms"
	ColCoinsFound = "coins_found"
)

// Column names of the benchmark summary CSV.
const (
	ColImplementation = "Implementation"
	ColAttempts       = "Attempts"
	ColPerSecond      = "Attempts/Second"
	ColPerMinute      = "Attempts/Minute"
)

// Benchmark is one implementation's throughput.
type Benchmark struct {
	Name      string
	Attempts  float64
	PerSecond float64
	PerMinute float64
}

// Results maps implementation name to its benchmark, kept in file order.
type Results []Benchmark

// Get returns the benchmark recorded for name.
func (r Results) Get(name string) (Benchmark, bool) {
	for _, b := range r {
		if b.Name == name {
			return b, true
		}
	}
	return Benchmark{}, false
}

// set records b, replacing an earlier entry with the same name in place.
func (r Results) set(b Benchmark) Results {
	for i := range r {
		if r[i].Name == b.Name {
			r[i] = b
			return r
		}
	}
	return append(r, b)
}

// ReadHistogram reads kernel_time_ms and coins_found columns. Either return
// value is nil when the file holds no usable rows.
func ReadHistogram(path string) ([]float64, []int64) {
	rows, err := readRows(path)
	if err != nil {
		logReadError(path, err)
		return nil, nil
	}

	var kernelTimes []float64
	var coinsFound []int64
	for _, row := range rows {
		kt, err := parseFloatField(row, ColKernelTime)
		if err != nil {
			continue
		}
		coins, err := parseIntField(row, ColCoinsFound)
		if err != nil {
			continue
		}
		kernelTimes = append(kernelTimes, kt)
		coinsFound = append(coinsFound, coins)
	}

	if len(kernelTimes) == 0 {
		return nil, nil
	}
	return kernelTimes, coinsFound
}

// ReadBenchmarks reads the benchmark summary CSV. It returns nil when the
// file is missing, unreadable or holds no usable rows.
func ReadBenchmarks(path string) Results {
	rows, err := readRows(path)
	if err != nil {
		logReadError(path, err)
		return nil
	}

	var results Results
	for _, row := range rows {
		name, ok := row[ColImplementation]
		if !ok {
			continue
		}
		attempts, err := parseFloatField(row, ColAttempts)
		if err != nil {
			continue
		}
		perSec, err := parseFloatField(row, ColPerSecond)
		if err != nil {
			continue
		}
		perMin, err := parseFloatField(row, ColPerMinute)
		if err != nil {
			continue
		}
		results = results.set(Benchmark{
			Name:      name,
			Attempts:  attempts,
			PerSecond: perSec,
			PerMinute: perMin,
		})
	}

	if len(results) == 0 {
		return nil
	}
	return results
}

// readRows returns each data row keyed by its header name.
func readRows(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseRows(file)
}

func parseRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseFloatField(row map[string]string, col string) (float64, error) {
	s, ok := row[col]
	if !ok {
		return 0, fmt.Errorf("missing column %q", col)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("column %q: non-finite value %q", col, s)
	}
	return v, nil
}

func parseIntField(row map[string]string, col string) (int64, error) {
	s, ok := row[col]
	if !ok {
		return 0, fmt.Errorf("missing column %q", col)
	}
	return strconv.ParseInt(s, 10, 64)
}

func logReadError(path string, err error) {
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("file not found", "path", path)
		return
	}
	slog.Warn("error reading CSV", "path", path, "error", err)
}
