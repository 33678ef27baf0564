package starlark

import "errors"

var (
	ErrContentNil         = errors.New("starlark content is nil")
	ErrValidationFailed   = errors.New("starlark script validation error")
	ErrCompileFailed      = errors.New("starlark compilation error")
	ErrBytecodeNil        = errors.New("starlark bytecode is nil")
	ErrExecCreationFailed = errors.New("unable to create starlark executable")
	ErrExecUnitNil        = errors.New("executable unit is nil")
	ErrExecFailed         = errors.New("starlark execution error")
	ErrUnsupportedType    = errors.New("unsupported type")
)
