package engine

import (
	"context"

	"github.com/robbyt/go-pyprimer/execution/data"
)

// Evaluator runs a compiled lesson script.
type Evaluator interface {
	// Eval runs the script using data found in ctx and returns its result.
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

// EvaluatorWithPrep is an Evaluator that can also stage runtime data on a context
// for a later Eval call.
type EvaluatorWithPrep interface {
	Evaluator
	data.Setter
}
