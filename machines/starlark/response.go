package starlark

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	starlarkLib "go.starlark.net/starlark"

	"github.com/robbyt/go-pyprimer/execution/data"
	"github.com/robbyt/go-pyprimer/internal/helpers"
)

// execResult is the final value of a script run along with what it printed.
type execResult struct {
	starlarkLib.Value
	output      []string
	execTime    time.Duration
	scriptExeID string
	logger      *slog.Logger
}

func newEvalResult(
	handler slog.Handler,
	obj starlarkLib.Value,
	output []string,
	execTime time.Duration,
	exeID string,
) *execResult {
	_, logger := helpers.SetupLogger(handler, "starlark", "execResult")

	if obj == nil {
		obj = starlarkLib.None
	}

	return &execResult{
		Value:       obj,
		output:      output,
		execTime:    execTime,
		scriptExeID: exeID,
		logger:      logger,
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Type: %s, Value: %v, ExecTime: %s, ScriptExeID: %s}",
		r.Type(), r.Value, r.GetExecTime(), r.GetScriptExeID())
}

func (r *execResult) Type() data.Types {
	switch r.Value.Type() {
	case "NoneType":
		return data.NONE
	case "bool":
		return data.BOOL
	case "int":
		return data.INT
	case "float":
		return data.FLOAT
	case "string":
		return data.STRING
	case "list":
		return data.LIST
	case "tuple":
		return data.TUPLE
	case "dict":
		return data.MAP
	case "set":
		return data.SET
	case "function", "builtin_function_or_method":
		return data.FUNCTION
	default:
		r.logger.Error("unknown type", "type", r.Value.Type())
		return data.ERROR
	}
}

func (r *execResult) GetScriptExeID() string {
	return r.scriptExeID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}

func (r *execResult) Inspect() string {
	return r.Value.String()
}

// Output returns the lines printed by the script.
func (r *execResult) Output() []string {
	return slices.Clone(r.output)
}

// Interface returns the Go native value for the Starlark value
func (r *execResult) Interface() any {
	v, err := convertStarlarkValueToInterface(r.Value)
	if err != nil {
		r.logger.Error("failed to convert starlark value to interface", "error", err)
		return nil
	}
	return v
}
