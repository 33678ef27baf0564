package data

import "errors"

var (
	// ErrStaticProviderNoRuntimeUpdates is returned when runtime data is added to a
	// StaticProvider.
	ErrStaticProviderNoRuntimeUpdates = errors.New("static provider does not accept runtime data")
	ErrEmptyContextKey                = errors.New("context key is empty")
	ErrEmptyKey                       = errors.New("empty keys are not allowed")
	ErrNoProvider                     = errors.New("no data provider available")
)
