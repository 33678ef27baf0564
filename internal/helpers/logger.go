package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger creates a logger for a component of the primer.
// If the provided handler is nil, a text handler writing to stderr is created and
// grouped under componentName, so lesson output on stdout stays readable.
//
// Parameters:
//   - handler: The slog.Handler to use, or nil for defaults
//   - componentName: The name of the component (e.g., "starlark", "envcheck")
//   - groupName: Optional additional group name within the component
//
// Returns:
//   - The configured handler
//   - A logger created from the handler
func SetupLogger(handler slog.Handler, componentName string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, nil).WithGroup(componentName)
		slog.New(handler).Debug("handler is nil, using the default logger configuration")
	}

	if groupName != "" {
		return handler, slog.New(handler.WithGroup(groupName))
	}
	return handler, slog.New(handler)
}

// NopHandler returns a handler that discards all records.
func NopHandler() slog.Handler {
	return slog.DiscardHandler
}
