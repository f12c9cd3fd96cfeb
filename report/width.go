package report

import "os"

// histogramLabelColumns is the space taken by the range label, separator
// and count around each bar.
const histogramLabelColumns = 2 + 8 + 1 + 8 + 2 + 1 + 4

// BarWidth resolves a configured histogram width. Zero means fit the
// terminal behind f, falling back to DefaultHistogramWidth.
func BarWidth(configured int, f *os.File) int {
	if configured > 0 {
		return configured
	}
	if f != nil {
		if cols, ok := TerminalWidth(f); ok && cols > histogramLabelColumns+10 {
			return cols - histogramLabelColumns
		}
	}
	return DefaultHistogramWidth
}
