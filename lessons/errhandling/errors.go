package errhandling

import (
	"errors"
	"fmt"

	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// InsufficientFundsError is returned by Account.Withdraw. It matches
// ErrInsufficientFunds with errors.Is.
type InsufficientFundsError struct {
	Balance int
	Amount  int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("cannot withdraw ₹%d: balance is only ₹%d", e.Amount, e.Balance)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// InvalidEmailError is a value error that says which address was rejected and why.
type InvalidEmailError struct {
	Email  string
	Reason string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email %q: %s", e.Email, e.Reason)
}

func (e *InvalidEmailError) Unwrap() error {
	return errkind.ErrValue
}

// RecordError describes why one record of a batch was rejected.
type RecordError struct {
	Index  int
	Reason error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Reason)
}

func (e *RecordError) Unwrap() error {
	return e.Reason
}
