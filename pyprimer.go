// Package pyprimer builds Starlark evaluators for lesson scripts and runs the
// embedded lessons.
package pyprimer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/robbyt/go-pyprimer/execution/script/loader"
	"github.com/robbyt/go-pyprimer/lessons/scripts"
	"github.com/robbyt/go-pyprimer/machines/starlark"
)

func wrap(eval *starlark.Evaluator, err error) (*EvaluatorWrapper, error) {
	if err != nil {
		return nil, err
	}
	return NewEvaluatorWrapper(eval, eval.GetExecutableUnit()), nil
}

// FromStarlarkString compiles a Starlark script from a string. Runtime data comes
// from the context, see EvaluatorWrapper.AddDataToContext.
func FromStarlarkString(logHandler slog.Handler, content string) (*EvaluatorWrapper, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}
	return wrap(starlark.FromStarlarkLoader(logHandler, l))
}

// FromStarlarkStringWithData compiles a Starlark script from a string with static
// data that runtime data can override.
func FromStarlarkStringWithData(
	logHandler slog.Handler,
	content string,
	staticData map[string]any,
) (*EvaluatorWrapper, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}
	return wrap(starlark.FromStarlarkLoaderWithData(logHandler, l, staticData))
}

// FromStarlarkFile compiles a Starlark script from disk. Relative paths resolve
// against the working directory.
func FromStarlarkFile(logHandler slog.Handler, path string) (*EvaluatorWrapper, error) {
	return FromStarlarkFileWithData(logHandler, path, nil)
}

// FromStarlarkFileWithData compiles a Starlark script from disk with static data.
func FromStarlarkFileWithData(
	logHandler slog.Handler,
	path string,
	staticData map[string]any,
) (*EvaluatorWrapper, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	l, err := loader.NewFromDisk(abs)
	if err != nil {
		return nil, err
	}
	return wrap(starlark.FromStarlarkLoaderWithData(logHandler, l, staticData))
}

// Lessons lists the embedded lesson scripts.
func Lessons() []string {
	return scripts.Names()
}

// RunLesson runs one embedded lesson script and returns its transcript.
func RunLesson(
	ctx context.Context,
	logHandler slog.Handler,
	name string,
	data map[string]any,
) (*scripts.Transcript, error) {
	return scripts.Run(ctx, name, scripts.WithLogHandler(logHandler), scripts.WithData(data))
}
