package pyprimer

import (
	"context"

	"github.com/robbyt/go-pyprimer/engine"
	"github.com/robbyt/go-pyprimer/execution/script"
)

// EvaluatorWrapper pairs an evaluator with the ExecutableUnit it was compiled into.
// This allows callers to follow the "compile once, run many times" pattern.
type EvaluatorWrapper struct {
	delegate engine.EvaluatorWithPrep
	execUnit *script.ExecutableUnit
}

// NewEvaluatorWrapper creates a new evaluator wrapper
func NewEvaluatorWrapper(
	delegate engine.EvaluatorWithPrep,
	execUnit *script.ExecutableUnit,
) *EvaluatorWrapper {
	return &EvaluatorWrapper{
		delegate: delegate,
		execUnit: execUnit,
	}
}

// Eval implements the engine.Evaluator interface
func (e *EvaluatorWrapper) Eval(ctx context.Context) (engine.EvaluatorResponse, error) {
	return e.delegate.Eval(ctx)
}

// AddDataToContext stages runtime data that the next Eval on the returned context
// exposes to the script as ctx.
func (e *EvaluatorWrapper) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	return e.delegate.AddDataToContext(ctx, d...)
}

// GetExecutableUnit returns the stored ExecutableUnit
func (e *EvaluatorWrapper) GetExecutableUnit() *script.ExecutableUnit {
	return e.execUnit
}
