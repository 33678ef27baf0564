package starlark

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-pyprimer/execution/script"
	"github.com/robbyt/go-pyprimer/internal/helpers"
)

// Compiler validates Starlark lesson scripts and compiles them to programs.
type Compiler struct {
	name       string
	globals    []string
	logHandler slog.Handler
	logger     *slog.Logger
}

// NewCompiler creates a Starlark compiler. Defaults are applied first, then the
// options in order, then the result is validated.
func NewCompiler(opts ...CompilerOption) (*Compiler, error) {
	c := &Compiler{}
	c.applyDefaults()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid compiler configuration: %w", err)
	}

	if c.logger != nil {
		c.logHandler = c.logger.Handler()
	} else {
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "starlark", "Compiler")
	}

	return c, nil
}

func (c *Compiler) String() string {
	return "starlark.Compiler"
}

// Compile turns the provided script content into a runnable program.
func (c *Compiler) Compile(scriptReader io.ReadCloser) (script.ExecutableContent, error) {
	if scriptReader == nil {
		return nil, ErrContentNil
	}

	scriptBodyBytes, err := io.ReadAll(scriptReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	if err := scriptReader.Close(); err != nil {
		return nil, fmt.Errorf("failed to close reader: %w", err)
	}

	return c.compile(scriptBodyBytes)
}

func (c *Compiler) compile(scriptBodyBytes []byte) (*executable, error) {
	logger := c.logger.WithGroup("compile")
	if len(scriptBodyBytes) == 0 {
		logger.Error("compile called with empty script")
		return nil, ErrContentNil
	}

	logger.Debug("starting validation", "name", c.name)

	program, err := compileWithEmptyGlobals(c.name, scriptBodyBytes, c.globals)
	if err != nil {
		logger.Warn("compilation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	exe := newExecutable(scriptBodyBytes, program)
	if exe == nil {
		logger.Warn("failed to create executable from program")
		return nil, ErrExecCreationFailed
	}

	logger.Debug("validation completed")
	return exe, nil
}
