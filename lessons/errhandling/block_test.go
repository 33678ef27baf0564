package errhandling

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

func TestBlock_Run(t *testing.T) {
	t.Parallel()

	errOther := errors.New("other")

	tests := []struct {
		name      string
		body      error
		handlers  []Handler
		wantErr   error
		wantTrace []string
	}{
		{
			name:      "success runs else then finally",
			wantTrace: []string{"body", "else", "finally"},
		},
		{
			name: "caught by kind",
			body: fmt.Errorf("%w: 10 / 0", errkind.ErrZeroDivision),
			handlers: []Handler{
				{Kinds: []error{errkind.ErrZeroDivision}},
			},
			wantTrace: []string{"body", "handler", "finally"},
		},
		{
			name: "caught by kind set",
			body: fmt.Errorf("%w: bad", errkind.ErrType),
			handlers: []Handler{
				{Kinds: []error{errkind.ErrIndex}},
				{Kinds: []error{errkind.ErrValue, errkind.ErrType}},
			},
			wantTrace: []string{"body", "handler", "finally"},
		},
		{
			name:      "catch all",
			body:      errOther,
			handlers:  []Handler{{}},
			wantTrace: []string{"body", "handler", "finally"},
		},
		{
			name:      "caught by type",
			body:      fmt.Errorf("withdraw: %w", &InsufficientFundsError{Balance: 1, Amount: 2}),
			handlers:  []Handler{{Match: ByType[*InsufficientFundsError]()}},
			wantTrace: []string{"body", "handler", "finally"},
		},
		{
			name:      "unmatched propagates after finally",
			body:      errOther,
			handlers:  []Handler{{Kinds: []error{errkind.ErrKey}}},
			wantErr:   errOther,
			wantTrace: []string{"body", "finally"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var trace []string
			handlers := make([]Handler, len(tt.handlers))
			for i, h := range tt.handlers {
				h.Handle = func(error) error {
					trace = append(trace, "handler")
					return nil
				}
				handlers[i] = h
			}

			err := Block{
				Body: func() error {
					trace = append(trace, "body")
					return tt.body
				},
				Handlers: handlers,
				Else: func() error {
					trace = append(trace, "else")
					return nil
				},
				Finally: func() { trace = append(trace, "finally") },
			}.Run()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantTrace, trace)
		})
	}
}

func TestBlock_HandlerCanReplaceError(t *testing.T) {
	t.Parallel()

	errWrapped := errors.New("wrapped")
	err := Block{
		Body: func() error { return errkind.ErrKey },
		Handlers: []Handler{{
			Kinds:  []error{errkind.ErrKey},
			Handle: func(err error) error { return fmt.Errorf("%w: %w", errWrapped, err) },
		}},
	}.Run()
	require.ErrorIs(t, err, errWrapped)
	require.ErrorIs(t, err, errkind.ErrKey)
}

func TestBlock_NilHandleSwallows(t *testing.T) {
	t.Parallel()
	err := Block{
		Body:     func() error { return errkind.ErrKey },
		Handlers: []Handler{{Kinds: []error{errkind.ErrKey}}},
	}.Run()
	require.NoError(t, err)
}

func TestBlock_FinallyRunsOnPanic(t *testing.T) {
	t.Parallel()

	ran := false
	assert.Panics(t, func() {
		_ = Block{
			Body:    func() error { panic("boom") },
			Finally: func() { ran = true },
		}.Run()
	})
	assert.True(t, ran)
}

func TestBlock_ElseErrorIsNotHandled(t *testing.T) {
	t.Parallel()

	handled := false
	err := Block{
		Body: func() error { return nil },
		Handlers: []Handler{{Handle: func(error) error {
			handled = true
			return nil
		}}},
		Else: func() error { return errkind.ErrValue },
	}.Run()
	require.ErrorIs(t, err, errkind.ErrValue)
	assert.False(t, handled)
}
