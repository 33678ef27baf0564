package starlark

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	starlarkLib "go.starlark.net/starlark"

	"github.com/robbyt/go-pyprimer/engine"
	"github.com/robbyt/go-pyprimer/execution/constants"
	"github.com/robbyt/go-pyprimer/execution/data"
	"github.com/robbyt/go-pyprimer/execution/script"
	"github.com/robbyt/go-pyprimer/internal/helpers"
)

// Evaluator runs compiled Starlark lesson scripts.
type Evaluator struct {
	// universe is the global variable map for the Starlark VM
	universe starlarkLib.StringDict

	execUnit *script.ExecutableUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewEvaluator creates a new Evaluator for the executable unit.
func NewEvaluator(handler slog.Handler, execUnit *script.ExecutableUnit) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "starlark", "Evaluator")

	universe := standardModules()
	universe[constants.Ctx] = starlarkLib.None

	return &Evaluator{
		universe:   universe,
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "starlark.Evaluator"
}

// GetExecutableUnit returns the compiled unit this evaluator runs.
func (be *Evaluator) GetExecutableUnit() *script.ExecutableUnit {
	return be.execUnit
}

// prepareGlobals merges the universe and input globals, input globals win.
func (be *Evaluator) prepareGlobals(inputGlobals starlarkLib.StringDict) starlarkLib.StringDict {
	merged := make(starlarkLib.StringDict, len(be.universe)+len(inputGlobals))
	maps.Copy(merged, be.universe)
	maps.Copy(merged, inputGlobals)
	return merged
}

// exec runs the program. Printed lines are collected in order and logged at debug.
func (be *Evaluator) exec(
	ctx context.Context,
	prog *starlarkLib.Program,
	globals starlarkLib.StringDict,
) (*execResult, error) {
	logger := be.logger.WithGroup("exec")
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecFailed, err)
	}
	startTime := time.Now()

	var output []string
	thread := &starlarkLib.Thread{
		Name: "eval",
		Print: func(thread *starlarkLib.Thread, msg string) {
			output = append(output, msg)
			logger.DebugContext(ctx, msg, "starlark-thread", thread.Name)
		},
	}

	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	finalGlobals, err := prog.Init(thread, globals)
	execTime := time.Since(startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecFailed, err)
	}

	// A script reports its value through a global named result, or through the
	// last "_" assignment.
	mainVal, ok := finalGlobals[constants.Result]
	if !ok {
		mainVal = finalGlobals["_"]
	}

	if callable, ok := mainVal.(starlarkLib.Callable); ok {
		mainVal, err = starlarkLib.Call(thread, callable, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: calling %s: %w", ErrExecFailed, callable.Name(), err)
		}
	}
	if mainVal != nil {
		mainVal.Freeze()
	}

	logger.DebugContext(ctx, "execution complete", "duration", execTime, "lines", len(output))
	return newEvalResult(be.logHandler, mainVal, output, execTime, ""), nil
}

// Eval evaluates the loaded program with data from the unit's provider bound to ctx.
func (be *Evaluator) Eval(ctx context.Context) (engine.EvaluatorResponse, error) {
	if be.execUnit == nil {
		return nil, ErrExecUnitNil
	}

	content := be.execUnit.GetContent()
	if content == nil || content.GetByteCode() == nil {
		return nil, ErrBytecodeNil
	}

	prog, ok := content.GetByteCode().(*starlarkLib.Program)
	if !ok {
		return nil, fmt.Errorf("invalid bytecode type: expected *starlark.Program, got %T", content.GetByteCode())
	}

	exeID := be.execUnit.GetID()
	logger := be.logger.WithGroup("Eval").With("exeID", exeID)

	inputData := make(map[string]any)
	if provider := be.execUnit.GetDataProvider(); provider != nil {
		d, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get input data from provider: %w", err)
		}
		inputData = d
	}

	globals, err := convertInputData(inputData)
	if err != nil {
		return nil, err
	}

	result, err := be.exec(ctx, prog, be.prepareGlobals(globals))
	if err != nil {
		logger.WarnContext(ctx, "script failed", "error", err)
		return nil, err
	}
	result.scriptExeID = exeID

	return result, nil
}

// AddDataToContext stages runtime data for a later Eval, using the unit's provider.
func (be *Evaluator) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	var provider data.Provider
	if be.execUnit != nil {
		provider = be.execUnit.GetDataProvider()
	}
	return data.AddDataToContextHelper(ctx, be.logger.WithGroup("AddDataToContext"), provider, d...)
}
