// Package scripts embeds Starlark versions of the container, comprehension, function
// and JSON lessons and runs them through the Starlark machine. Starlark is a Python
// dialect, so the transcripts double as a reference for the Go lesson packages.
package scripts

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/robbyt/go-pyprimer/execution/script/loader"
	"github.com/robbyt/go-pyprimer/internal/helpers"
	"github.com/robbyt/go-pyprimer/lessons/errkind"
	"github.com/robbyt/go-pyprimer/machines/starlark"
)

//go:embed lessons/*.star
var lessonFS embed.FS

const lessonDir = "lessons"

// Transcript is what a lesson printed and the value it left in result.
type Transcript struct {
	Name     string
	Lines    []string
	Result   any
	ExecTime string
}

// Names lists the embedded lessons in lesson order.
func Names() []string {
	files := lessonFiles()
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = lessonName(f)
	}
	return names
}

func lessonFiles() []string {
	entries, err := fs.ReadDir(lessonFS, lessonDir)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".star" {
			files = append(files, e.Name())
		}
	}
	slices.Sort(files)
	return files
}

// lessonName turns "03_functions.star" into "functions".
func lessonName(file string) string {
	base := strings.TrimSuffix(file, ".star")
	if _, rest, ok := strings.Cut(base, "_"); ok {
		return rest
	}
	return base
}

func lessonFile(name string) (string, error) {
	for _, f := range lessonFiles() {
		if lessonName(f) == name {
			return path.Join(lessonDir, f), nil
		}
	}
	return "", fmt.Errorf("%w: lesson %q", errkind.ErrNotFound, name)
}

// Source returns the Starlark source of a lesson.
func Source(name string) (string, error) {
	file, err := lessonFile(name)
	if err != nil {
		return "", err
	}
	b, err := fs.ReadFile(lessonFS, file)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errkind.ErrNotFound, err)
	}
	return string(b), nil
}

type runConfig struct {
	logHandler slog.Handler
	data       map[string]any
}

// RunOption configures Run.
type RunOption func(*runConfig)

// WithLogHandler sets the handler for the compiler and evaluator logs.
func WithLogHandler(handler slog.Handler) RunOption {
	return func(c *runConfig) {
		c.logHandler = handler
	}
}

// WithData makes d available to the lesson as the ctx dict.
func WithData(d map[string]any) RunOption {
	return func(c *runConfig) {
		c.data = d
	}
}

// Run compiles and runs a lesson, returning its printed lines in order and its
// result converted to Go values.
func Run(ctx context.Context, name string, opts ...RunOption) (*Transcript, error) {
	cfg := &runConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	handler, logger := helpers.SetupLogger(cfg.logHandler, "scripts", "Run")
	logger = logger.With("lesson", name)

	file, err := lessonFile(name)
	if err != nil {
		return nil, err
	}

	ldr, err := loader.NewFromFS(lessonFS, file)
	if err != nil {
		return nil, err
	}

	eval, err := starlark.FromStarlarkLoaderWithData(handler, ldr, cfg.data)
	if err != nil {
		return nil, fmt.Errorf("compiling lesson %s: %w", name, err)
	}

	resp, err := eval.Eval(ctx)
	if err != nil {
		logger.WarnContext(ctx, "lesson failed", "error", err)
		return nil, fmt.Errorf("running lesson %s: %w", name, err)
	}

	logger.DebugContext(ctx, "lesson finished", "lines", len(resp.Output()), "duration", resp.GetExecTime())
	return &Transcript{
		Name:     name,
		Lines:    resp.Output(),
		Result:   resp.Interface(),
		ExecTime: resp.GetExecTime(),
	}, nil
}

// RunAll runs every lesson in order and stops at the first failure.
func RunAll(ctx context.Context, opts ...RunOption) ([]*Transcript, error) {
	var out []*Transcript
	for _, name := range Names() {
		tr, err := Run(ctx, name, opts...)
		if err != nil {
			return out, err
		}
		out = append(out, tr)
	}
	return out, nil
}
