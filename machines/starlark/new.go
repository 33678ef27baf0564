package starlark

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-pyprimer/execution/constants"
	"github.com/robbyt/go-pyprimer/execution/data"
	"github.com/robbyt/go-pyprimer/execution/script"
	"github.com/robbyt/go-pyprimer/execution/script/loader"
)

// FromStarlarkLoader creates an evaluator that reads runtime data from the context
// only, see Evaluator.AddDataToContext.
func FromStarlarkLoader(logHandler slog.Handler, ldr loader.Loader) (*Evaluator, error) {
	return NewEvaluatorFromLoader(logHandler, ldr, data.NewContextProvider(constants.EvalData))
}

// FromStarlarkLoaderWithData creates an evaluator with static data that runtime data
// added to the context can override.
func FromStarlarkLoaderWithData(
	logHandler slog.Handler,
	ldr loader.Loader,
	staticData map[string]any,
) (*Evaluator, error) {
	provider := data.NewCompositeProvider(
		data.NewStaticProvider(staticData),
		data.NewContextProvider(constants.EvalData),
	)
	return NewEvaluatorFromLoader(logHandler, ldr, provider)
}

// NewEvaluatorFromLoader compiles the script from ldr and returns an evaluator ready
// for execution.
func NewEvaluatorFromLoader(
	logHandler slog.Handler,
	ldr loader.Loader,
	dataProvider data.Provider,
) (*Evaluator, error) {
	if ldr == nil {
		return nil, script.ErrLoaderNil
	}

	opts := []CompilerOption{WithCtxGlobal()}
	if logHandler != nil {
		opts = append(opts, WithLogHandler(logHandler))
	}

	execUnitID := ""
	if u := ldr.GetSourceURL(); u != nil {
		execUnitID = u.String()
		if u.Host != "" {
			opts = append(opts, WithName(u.Host))
		}
	}

	compiler, err := NewCompiler(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Starlark compiler: %w", err)
	}

	execUnit, err := script.NewExecutableUnit(logHandler, execUnitID, ldr, compiler, dataProvider)
	if err != nil {
		return nil, err
	}

	return NewEvaluator(logHandler, execUnit), nil
}
