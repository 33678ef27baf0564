package script

import "errors"

var (
	ErrCompiler     = errors.New("compiler failed or is invalid")
	ErrLoaderNil    = errors.New("loader is nil")
	ErrLoaderFailed = errors.New("loader failed")
)
