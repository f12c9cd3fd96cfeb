// Package extract pulls labelled numeric values out of benchmark log output.
//
// The benchmark executable prints lines such as
//
//	KERNEL_TIME: 12.503
//	COINS_FOUND: 3
//
// possibly surrounded by other text. A Pattern describes one such label and
// how its value is converted; Values collects every match from a Source in
// input order.
package extract

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/neehar-mavuduru/deti-coin-analysis/stats"
)

// Pattern matches LABEL:<spaces><number> anywhere in a line.
type Pattern[T stats.Number] struct {
	Label string
	re    *regexp.Regexp
	parse func(string) (T, error)
}

// Labels emitted by the benchmark executable.
var (
	KernelTime = NewFloatPattern("KERNEL_TIME")
	CoinsFound = NewIntPattern("COINS_FOUND")
)

// NewFloatPattern matches LABEL: followed by a non-negative decimal number.
func NewFloatPattern(label string) Pattern[float64] {
	return Pattern[float64]{
		Label: label,
		re:    regexp.MustCompile(regexp.QuoteMeta(label) + `:\s*(\d+(?:\.\d*)?)`),
		parse: func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
	}
}

// NewIntPattern matches LABEL: followed by an integer. A leading minus sign is
// accepted; callers that expect counts should check NegativeCount.
func NewIntPattern(label string) Pattern[int64] {
	return Pattern[int64]{
		Label: label,
		re:    regexp.MustCompile(regexp.QuoteMeta(label) + `:\s*(-?\d+)`),
		parse: func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
	}
}

// Match returns the value carried by line, if any.
func (p Pattern[T]) Match(line string) (T, bool) {
	var zero T
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return zero, false
	}
	v, err := p.parse(m[1])
	if err != nil {
		return zero, false
	}
	return v, true
}

// Read scans r line by line and returns the matched values in order.
func Read[T stats.Number](r io.Reader, p Pattern[T]) ([]T, error) {
	var values []T
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if v, ok := p.Match(scanner.Text()); ok {
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return values, fmt.Errorf("scan %s lines: %w", p.Label, err)
	}
	return values, nil
}

// Values extracts every value matching p from src. A source that cannot be
// read yields an empty result and a logged warning.
func Values[T stats.Number](src Source, p Pattern[T]) []T {
	var out []T
	err := src.each(func(line string) {
		if v, ok := p.Match(line); ok {
			out = append(out, v)
		}
	})
	if err != nil {
		slog.Warn("could not read source", "source", src.String(), "error", err)
		return nil
	}
	return out
}

// NegativeCount reports how many values are below zero. The log format does
// not forbid negative counts, so they pass extraction and are flagged here.
func NegativeCount[T stats.Number](values []T) int {
	n := 0
	for _, v := range values {
		if v < 0 {
			n++
		}
	}
	return n
}
