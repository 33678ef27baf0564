// Package errhandling covers signalling and handling failures: catching by kind or
// by type, success-only and always-run blocks, custom error types with fields, and a
// batch pattern that keeps going past bad records.
package errhandling

import (
	"errors"

	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

// Handler handles the errors it matches. A handler with no Kinds and no Match catches
// every error. A nil Handle swallows the error.
type Handler struct {
	Kinds  []error
	Match  func(error) bool
	Handle func(error) error
}

func (h Handler) matches(err error) bool {
	if h.Match != nil && h.Match(err) {
		return true
	}
	if len(h.Kinds) == 0 {
		return h.Match == nil
	}
	return errkind.IsAny(err, h.Kinds...)
}

// ByType returns a Match func that catches errors of type T anywhere in the chain.
func ByType[T error]() func(error) bool {
	return func(err error) bool {
		var target T
		return errors.As(err, &target)
	}
}

// Block runs Body, sends a failure to the first matching Handler, runs Else only when
// Body succeeded and always runs Finally last, also when Body panics. An error no
// handler matches is returned unchanged. Errors from Else are not handled.
type Block struct {
	Body     func() error
	Handlers []Handler
	Else     func() error
	Finally  func()
}

func (b Block) Run() error {
	if b.Finally != nil {
		defer b.Finally()
	}

	err := b.Body()
	if err == nil {
		if b.Else != nil {
			return b.Else()
		}
		return nil
	}

	for _, h := range b.Handlers {
		if !h.matches(err) {
			continue
		}
		if h.Handle == nil {
			return nil
		}
		return h.Handle(err)
	}
	return err
}
