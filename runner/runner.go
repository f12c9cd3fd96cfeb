// Package runner executes the benchmark binary and captures its output.
package runner

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Run announces the command on out, starts path with args, waits for it to
// exit and returns its stdout as lines. A missing executable or non-zero exit status is logged together with
// the captured stderr and yields nil.
func Run(ctx context.Context, out io.Writer, path string, args []string) []string {
	cmd := exec.CommandContext(ctx, path, args...)
	fmt.Fprintf(out, "Running: %s\n", strings.Join(append([]string{path}, args...), " "))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			slog.Warn("executable failed",
				"path", path,
				"exit_code", exitErr.ExitCode(),
				"stderr", strings.TrimSpace(stderr.String()))
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
			slog.Warn("executable not found", "path", path)
		default:
			slog.Warn("could not run executable", "path", path, "error", err)
		}
		return nil
	}

	return splitLines(stdout.Bytes())
}

func splitLines(b []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(b))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
