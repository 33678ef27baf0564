package envcheck

import (
	"errors"
	"log/slog"
	"os"
	"runtime/debug"
)

// Option configures an Inspector.
type Option func(*Inspector) error

// WithBuildInfo replaces debug.ReadBuildInfo as the source of module versions.
func WithBuildInfo(fn func() (*debug.BuildInfo, bool)) Option {
	return func(i *Inspector) error {
		if fn == nil {
			return errors.New("build info func cannot be nil")
		}
		i.buildInfo = fn
		return nil
	}
}

// WithExecutable replaces os.Executable as the source of the binary path.
func WithExecutable(fn func() (string, error)) Option {
	return func(i *Inspector) error {
		if fn == nil {
			return errors.New("executable func cannot be nil")
		}
		i.executable = fn
		return nil
	}
}

// WithStdlib replaces the check that decides whether a path is a standard library
// package.
func WithStdlib(fn func(string) bool) Option {
	return func(i *Inspector) error {
		if fn == nil {
			return errors.New("stdlib func cannot be nil")
		}
		i.stdlib = fn
		return nil
	}
}

// WithLogHandler sets the slog handler used by the Inspector.
func WithLogHandler(handler slog.Handler) Option {
	return func(i *Inspector) error {
		if handler == nil {
			return errors.New("log handler cannot be nil")
		}
		i.logHandler = handler
		return nil
	}
}

func (i *Inspector) applyDefaults() {
	i.buildInfo = debug.ReadBuildInfo
	i.executable = os.Executable
	i.stdlib = isStdlib
}
