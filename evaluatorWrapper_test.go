package pyprimer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-pyprimer/engine/mocks"
	"github.com/robbyt/go-pyprimer/execution/script"
)

func TestEvaluatorWrapper(t *testing.T) {
	t.Parallel()

	t.Run("delegates Eval", func(t *testing.T) {
		t.Parallel()
		resp := &mocks.EvaluatorResponse{}
		resp.On("Interface").Return("done")

		delegate := &mocks.Evaluator{}
		delegate.On("Eval", mock.Anything).Return(resp, nil)

		unit := &script.ExecutableUnit{ID: "unit-1"}
		w := NewEvaluatorWrapper(delegate, unit)
		assert.Same(t, unit, w.GetExecutableUnit())

		got, err := w.Eval(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "done", got.Interface())
		delegate.AssertExpectations(t)
	})

	t.Run("propagates Eval errors", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		delegate := &mocks.Evaluator{}
		delegate.On("Eval", mock.Anything).Return(nil, boom)

		_, err := NewEvaluatorWrapper(delegate, nil).Eval(context.Background())
		require.ErrorIs(t, err, boom)
	})

	t.Run("delegates AddDataToContext", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		enriched := context.WithValue(ctx, struct{}{}, "x")
		d := map[string]any{"name": "Gopher"}

		delegate := &mocks.Evaluator{}
		delegate.On("AddDataToContext", ctx, []map[string]any{d}).Return(enriched, nil)

		got, err := NewEvaluatorWrapper(delegate, nil).AddDataToContext(ctx, d)
		require.NoError(t, err)
		assert.Equal(t, enriched, got)
		delegate.AssertExpectations(t)
	})
}
