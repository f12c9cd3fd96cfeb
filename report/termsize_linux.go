//go:build linux

package report

import (
	"os"

	"golang.org/x/sys/unix"
)

// TerminalWidth returns the column count of the terminal behind f.
func TerminalWidth(f *os.File) (int, bool) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 0, false
	}
	return int(ws.Col), true
}
