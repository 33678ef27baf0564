package engine

import "github.com/robbyt/go-pyprimer/execution/data"

// EvaluatorResponse is the value produced by a script run.
type EvaluatorResponse interface {
	// Type of the value.
	Type() data.Types

	// Inspect returns the value as the script language would print it.
	Inspect() string

	// Interface converts the value to a native Go value.
	Interface() any

	// GetScriptExeID returns the ID of the executable unit that produced the value.
	GetScriptExeID() string

	// GetExecTime returns how long the script ran.
	GetExecTime() string

	// Output returns the lines the script printed, in order.
	Output() []string
}
