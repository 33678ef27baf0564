// Package errkind holds the error kinds shared by every lesson package. Lessons wrap
// one of these sentinels so callers can catch failures by kind with errors.Is.
package errkind

import "errors"

var (
	ErrIndex            = errors.New("index out of range")
	ErrKey              = errors.New("key not found")
	ErrType             = errors.New("type mismatch")
	ErrValue            = errors.New("invalid value")
	ErrNotFound         = errors.New("resource not found")
	ErrZeroDivision     = errors.New("division by zero")
	ErrUnsupported      = errors.New("unsupported operation")
	ErrInvalidArguments = errors.New("invalid arguments")
)

var kinds = []error{
	ErrIndex,
	ErrKey,
	ErrType,
	ErrValue,
	ErrNotFound,
	ErrZeroDivision,
	ErrUnsupported,
	ErrInvalidArguments,
}

// Kind returns the first sentinel in this package that err matches, or nil.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// IsAny reports whether err matches any of targets. An empty target list matches
// every non-nil error.
func IsAny(err error, targets ...error) bool {
	if err == nil {
		return false
	}
	if len(targets) == 0 {
		return true
	}
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
