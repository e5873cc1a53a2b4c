package source

import (
	"errors"
	"fmt"

	"github.com/ggetv/cfg4j/environment"
)

// MergeSource combines several sources into one namespace. Sources are
// queried in order and merged with "later source wins" per key, mirroring
// the per-file precedence of the merge engine one level up. Any failing
// source fails the whole query.
type MergeSource struct {
	sources []Source
}

// NewMergeSource returns a composite over sources, in override order.
func NewMergeSource(sources ...Source) *MergeSource {
	return &MergeSource{sources: sources}
}

// Configuration implements [Source].
func (s *MergeSource) Configuration(env environment.Environment) (*Configuration, error) {
	values := make(map[string]string)
	provenance := make(map[string]string)

	for i, src := range s.sources {
		cfg, err := src.Configuration(env)
		if err != nil {
			return nil, fmt.Errorf("merge source %d: %w", i, err)
		}

		for _, key := range cfg.Keys() {
			v, _ := cfg.Get(key)
			values[key] = v
			if origin, ok := cfg.Provenance(key); ok {
				provenance[key] = origin
			} else {
				delete(provenance, key)
			}
		}
	}

	return NewConfiguration(values, provenance), nil
}

// FallbackSource queries its sources in order and returns the first
// successful snapshot. Only when every source fails does the query fail,
// wrapping [ErrNoSource] together with the individual errors.
type FallbackSource struct {
	sources []Source
}

// NewFallbackSource returns a composite over sources, in preference order.
func NewFallbackSource(sources ...Source) *FallbackSource {
	return &FallbackSource{sources: sources}
}

// Configuration implements [Source].
func (s *FallbackSource) Configuration(env environment.Environment) (*Configuration, error) {
	errs := make([]error, 0, len(s.sources))
	for _, src := range s.sources {
		cfg, err := src.Configuration(env)
		if err == nil {
			return cfg, nil
		}
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil, ErrNoSource
	}

	return nil, fmt.Errorf("%w: %w", ErrNoSource, errors.Join(errs...))
}
