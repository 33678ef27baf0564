// Package fileio covers scoped file handles, text, JSON and CSV round trips, and
// path queries. Missing files surface as errkind.ErrNotFound.
package fileio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"strings"

	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

const defaultPerm fs.FileMode = 0o644

const (
	modeRead   = os.O_RDONLY
	modeWrite  = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	modeAppend = os.O_WRONLY | os.O_CREATE | os.O_APPEND
)

// WithFile opens path, passes the handle to fn and closes it on every way out of fn,
// including a panic. A close failure is joined to the error fn returned.
func WithFile(path string, flag int, perm fs.FileMode, fn func(*os.File) error) (err error) {
	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return pathError(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing %s: %w", path, cerr))
		}
	}()
	return fn(f)
}

func pathError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", errkind.ErrNotFound, err)
	}
	return err
}

// WriteText replaces the contents of path with text.
func WriteText(path, text string) error {
	return WithFile(path, modeWrite, defaultPerm, func(f *os.File) error {
		_, err := f.WriteString(text)
		return err
	})
}

// AppendText adds text to the end of path, creating it if needed.
func AppendText(path, text string) error {
	return WithFile(path, modeAppend, defaultPerm, func(f *os.File) error {
		_, err := f.WriteString(text)
		return err
	})
}

// WriteLines writes each line as given. No separators are added.
func WriteLines(path string, lines []string) error {
	return WithFile(path, modeWrite, defaultPerm, func(f *os.File) error {
		w := bufio.NewWriter(f)
		for _, l := range lines {
			if _, err := w.WriteString(l); err != nil {
				return err
			}
		}
		return w.Flush()
	})
}

// ReadText returns the whole contents of path.
func ReadText(path string) (string, error) {
	var text string
	err := WithFile(path, modeRead, 0, func(f *os.File) error {
		b, err := io.ReadAll(f)
		text = string(b)
		return err
	})
	return text, err
}

// Lines yields the lines of path with their trailing "\n" or "\r\n" removed. Lines
// have no length limit. The file is opened when iteration starts and closed when it
// stops. A failure is yielded once with an empty line, then iteration ends.
func Lines(path string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := WithFile(path, modeRead, 0, func(f *os.File) error {
			r := bufio.NewReader(f)
			for {
				line, err := r.ReadString('\n')
				if line != "" {
					if !yield(trimNewline(line), nil) {
						stopped = true
						return nil
					}
				}
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
			}
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

func trimNewline(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// ReadLines returns the lines of path with their trailing newline removed.
func ReadLines(path string) ([]string, error) {
	var lines []string
	for line, err := range Lines(path) {
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// ReadAllLines returns the lines of path with their newline kept, so joining them
// gives back the file contents.
func ReadAllLines(path string) ([]string, error) {
	var lines []string
	err := WithFile(path, modeRead, 0, func(f *os.File) error {
		r := bufio.NewReader(f)
		for {
			line, err := r.ReadString('\n')
			if line != "" {
				lines = append(lines, line)
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	})
	return lines, err
}

// StripLine removes surrounding whitespace, like the lessons do before printing a
// line.
func StripLine(line string) string {
	return strings.TrimSpace(line)
}
