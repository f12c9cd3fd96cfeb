package extract

import (
	"bufio"
	"fmt"
	"os"
)

// Source is where log lines come from: a file on disk or lines already in
// memory (for example the captured stdout of the benchmark executable).
type Source interface {
	each(fn func(line string)) error
	String() string
}

// FilePath reads lines from the named file.
type FilePath string

// Lines is an in-memory sequence of log lines.
type Lines []string

func (f FilePath) each(fn func(string)) error {
	file, err := os.Open(string(f))
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", string(f), err)
	}
	return nil
}

func (f FilePath) String() string { return string(f) }

func (l Lines) each(fn func(string)) error {
	for _, line := range l {
		fn(line)
	}
	return nil
}

func (l Lines) String() string { return fmt.Sprintf("%d lines", len(l)) }
