package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider_GetData(t *testing.T) {
	t.Parallel()

	t.Run("nil data creates empty map", func(t *testing.T) {
		t.Parallel()
		result, err := NewStaticProvider(nil).GetData(context.Background())
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()
		provider := NewStaticProvider(simpleData)

		result, err := provider.GetData(context.Background())
		require.NoError(t, err)
		assert.Equal(t, simpleData, result)

		result["newTestKey"] = "newTestValue"
		again, err := provider.GetData(context.Background())
		require.NoError(t, err)
		assert.NotContains(t, again, "newTestKey", "modifications to result should not affect provider")
	})

	t.Run("nested data", func(t *testing.T) {
		t.Parallel()
		result, err := NewStaticProvider(lessonData).GetData(context.Background())
		require.NoError(t, err)
		assert.Equal(t, lessonData, result)
	})
}

func TestStaticProvider_AddDataToContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := NewStaticProvider(simpleData)

	newCtx, err := provider.AddDataToContext(ctx, map[string]any{"x": 1})
	require.ErrorIs(t, err, ErrStaticProviderNoRuntimeUpdates)
	assert.Equal(t, ctx, newCtx, "context should be returned unchanged")
}
