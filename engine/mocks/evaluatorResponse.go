package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/robbyt/go-pyprimer/execution/data"
)

// EvaluatorResponse is a mock implementation of engine.EvaluatorResponse.
type EvaluatorResponse struct {
	mock.Mock
}

// Type returns the data.Types the mock was set up with, or infers it from a plain
// Go value.
func (m *EvaluatorResponse) Type() data.Types {
	args := m.Called()
	switch v := args.Get(0).(type) {
	case data.Types:
		return v
	case nil:
		return data.NONE
	case bool:
		return data.BOOL
	case int, int64:
		return data.INT
	case float64:
		return data.FLOAT
	case string:
		return data.STRING
	case []any:
		return data.LIST
	case map[string]any:
		return data.MAP
	default:
		panic("unknown type")
	}
}

func (m *EvaluatorResponse) Inspect() string {
	args := m.Called()
	return args.String(0)
}

// Interface returns a mockable value of "any" type, and must be type asserted to the correct type.
func (m *EvaluatorResponse) Interface() any {
	args := m.Called()
	return args.Get(0)
}

func (m *EvaluatorResponse) GetScriptExeID() string {
	args := m.Called()
	return args.String(0)
}

func (m *EvaluatorResponse) GetExecTime() string {
	args := m.Called()
	return args.String(0)
}

func (m *EvaluatorResponse) Output() []string {
	args := m.Called()
	out, _ := args.Get(0).([]string)
	return out
}
