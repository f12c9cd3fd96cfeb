//go:build !linux

package report

import "os"

// TerminalWidth is only supported on Linux.
func TerminalWidth(f *os.File) (int, bool) {
	return 0, false
}
