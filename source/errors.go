package source

import "errors"

// Lookup errors returned by [Configuration] accessors. Callers should match
// them with [errors.Is].
var (
	// ErrKeyNotFound is returned when the requested key is absent from the
	// snapshot.
	ErrKeyNotFound = errors.New("configuration key not found")

	// ErrValueType is returned when a key is present but its value cannot
	// be coerced to the requested type.
	ErrValueType = errors.New("configuration value has wrong type")
)

var (
	// ErrInvalidConfig is returned by source factory functions when a
	// required field of the configuration struct is missing or invalid.
	ErrInvalidConfig = errors.New("invalid source configuration")

	// ErrLifecycle is returned when a lifecycle-bearing source is used
	// outside its Init/Close window, or when Init/Close are called in the
	// wrong state.
	ErrLifecycle = errors.New("source lifecycle violation")

	// ErrNoSource is returned by [FallbackSource] when every underlying
	// source failed to produce a configuration.
	ErrNoSource = errors.New("no source provided a configuration")
)
