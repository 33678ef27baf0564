package data

import (
	"context"
)

// Getter retrieves the data a lesson script receives as its ctx global.
type Getter interface {
	GetData(ctx context.Context) (map[string]any, error)
}

// Setter enriches a context with data for a later evaluation.
//
// Example:
//
//	ctx, err := provider.AddDataToContext(ctx, map[string]any{"numbers": []any{1, 2, 3}})
//	if err != nil {
//	    return err
//	}
//	result, err := evaluator.Eval(ctx)
type Setter interface {
	AddDataToContext(ctx context.Context, data ...map[string]any) (context.Context, error)
}

// Provider defines the interface for accessing runtime data for script execution.
type Provider interface {
	Getter
	Setter
}
