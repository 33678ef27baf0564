package starlark

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/robbyt/go-pyprimer/execution/constants"
)

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler) error

// WithGlobals sets the names a script may refer to before they are bound.
func WithGlobals(globals []string) CompilerOption {
	return func(c *Compiler) error {
		c.globals = globals
		return nil
	}
}

// WithCtxGlobal adds the ctx global, which carries the data provider's map.
func WithCtxGlobal() CompilerOption {
	return func(c *Compiler) error {
		if !slices.Contains(c.globals, constants.Ctx) {
			c.globals = append(c.globals, constants.Ctx)
		}
		return nil
	}
}

// WithName sets the file name used in compile errors and stack traces.
func WithName(name string) CompilerOption {
	return func(c *Compiler) error {
		if name == "" {
			return fmt.Errorf("name cannot be empty")
		}
		c.name = name
		return nil
	}
}

// WithLogHandler sets the log handler for the compiler.
func WithLogHandler(handler slog.Handler) CompilerOption {
	return func(c *Compiler) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.logHandler = handler
		c.logger = nil
		return nil
	}
}

// WithLogger sets a specific logger for the compiler.
func WithLogger(logger *slog.Logger) CompilerOption {
	return func(c *Compiler) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		c.logHandler = nil
		return nil
	}
}

func (c *Compiler) applyDefaults() {
	if c.globals == nil {
		c.globals = []string{}
	}
	if c.name == "" {
		c.name = "lesson.star"
	}
}

func (c *Compiler) validate() error {
	for _, g := range c.globals {
		if g == "" {
			return fmt.Errorf("global names cannot be empty")
		}
	}
	return nil
}
