package data

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

// CompositeProvider combines multiple providers and merges their results.
// Later providers in the chain override values from earlier providers.
type CompositeProvider struct {
	providers []Provider
}

// NewCompositeProvider creates a new CompositeProvider with the given providers.
// The providers will be queried in the order they are provided.
func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{
		providers: providers,
	}
}

// GetData calls each provider in sequence and deep merges the results.
func (p *CompositeProvider) GetData(ctx context.Context) (map[string]any, error) {
	result := make(map[string]any)

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		d, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("error from provider %d: %w", i, err)
		}
		result = deepMerge(result, d)
	}

	return result, nil
}

// deepMerge merges dst over src. Nested maps merge, everything else is replaced.
func deepMerge(src, dst map[string]any) map[string]any {
	result := maps.Clone(src)

	for k, dstVal := range dst {
		srcMap, srcIsMap := result[k].(map[string]any)
		dstMap, dstIsMap := dstVal.(map[string]any)
		if srcIsMap && dstIsMap {
			result[k] = deepMerge(srcMap, dstMap)
			continue
		}
		result[k] = dstVal
	}

	return result
}

// AddDataToContext hands the data to every provider in the chain. Static providers
// never accept runtime data; their refusal only becomes an error when nothing else
// in the chain could take the data.
func (p *CompositeProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	finalCtx := ctx

	var errs, staticErrs []error
	dynamic, accepted := 0, 0

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		_, isStatic := provider.(*StaticProvider)
		if !isStatic {
			dynamic++
		}

		nextCtx, err := provider.AddDataToContext(finalCtx, data...)
		if err != nil {
			if isStatic && errors.Is(err, ErrStaticProviderNoRuntimeUpdates) {
				staticErrs = append(staticErrs, fmt.Errorf("error from provider %d: %w", i, err))
				continue
			}
			errs = append(errs, fmt.Errorf("error from provider %d: %w", i, err))
			continue
		}

		finalCtx = nextCtx
		accepted++
	}

	switch {
	case dynamic == 0 && len(staticErrs) > 0:
		return ctx, errors.Join(staticErrs...)
	case dynamic > 0 && accepted == 0:
		return ctx, errors.Join(errs...)
	}
	return finalCtx, nil
}
