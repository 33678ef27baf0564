// Package constants holds the names shared between the Go side and lesson scripts.
package constants

// ContextKey is the type of keys stored on a context.Context by data providers.
type ContextKey string

const (
	// EvalData is the context key under which runtime data for a script is stored.
	EvalData ContextKey = "eval_data"

	Ctx    = "ctx"    // top-scope variable name for accessing input data from scripts
	Result = "result" // global a lesson script assigns its final value to
	Lesson = "lesson" // key holding the lesson name inside the ctx dict
)
