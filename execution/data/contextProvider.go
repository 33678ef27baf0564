package data

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/robbyt/go-pyprimer/execution/constants"
)

// ContextProvider retrieves and stores data in the context using a specified key.
type ContextProvider struct {
	contextKey constants.ContextKey
}

// NewContextProvider creates a new ContextProvider with the given context key.
func NewContextProvider(contextKey constants.ContextKey) *ContextProvider {
	return &ContextProvider{
		contextKey: contextKey,
	}
}

// GetData extracts data from the context using the configured context key.
func (p *ContextProvider) GetData(ctx context.Context) (map[string]any, error) {
	if p.contextKey == "" {
		return nil, ErrEmptyContextKey
	}

	value := ctx.Value(p.contextKey)
	if value == nil {
		return make(map[string]any), nil
	}

	d, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid input data type: expected map[string]any, got %T", value)
	}

	return d, nil
}

// AddDataToContext merges the provided maps into the context. Nested maps are merged
// recursively and later values override earlier ones for duplicate keys. Keys that
// cannot be stored are reported together, the rest are still stored.
func (p *ContextProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	if p.contextKey == "" {
		return ctx, ErrEmptyContextKey
	}

	var errz []error
	toStore := make(map[string]any)

	if existing, ok := ctx.Value(p.contextKey).(map[string]any); ok {
		maps.Copy(toStore, existing)
	}

	for _, dataMap := range data {
		for key, value := range dataMap {
			if key == "" {
				errz = append(errz, ErrEmptyKey)
				continue
			}

			processed, err := cloneValue(value)
			if err != nil {
				errz = append(errz, fmt.Errorf("processing value for key %q: %w", key, err))
				continue
			}
			mergeInto(toStore, key, processed)
		}
	}

	return context.WithValue(ctx, p.contextKey, toStore), errors.Join(errz...)
}

// cloneValue copies nested maps so later merges never write into caller data.
func cloneValue(value any) (any, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return value, nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		if k == "" {
			return nil, fmt.Errorf("nested map: %w", ErrEmptyKey)
		}
		c, err := cloneValue(v)
		if err != nil {
			return nil, fmt.Errorf("nested value for key %q: %w", k, err)
		}
		out[k] = c
	}
	return out, nil
}

func mergeInto(target map[string]any, key string, value any) {
	if newMap, ok := value.(map[string]any); ok {
		if existingMap, ok := target[key].(map[string]any); ok {
			merged := maps.Clone(existingMap)
			for k, v := range newMap {
				mergeInto(merged, k, v)
			}
			target[key] = merged
			return
		}
	}
	target[key] = value
}
