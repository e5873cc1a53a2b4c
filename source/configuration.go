// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Configuration is the immutable result of one configuration query: a flat
// mapping from dotted-path keys to string values, with optional provenance
// (the file each final value came from). It is constructed by copy and
// never mutated afterwards, so it is safe to read concurrently and to keep
// across backend refreshes.
type Configuration struct {
	values     map[string]string
	provenance map[string]string
}

// NewConfiguration builds a snapshot from the given mappings. Both maps are
// copied; the caller keeps ownership of its arguments. provenance may be
// nil.
func NewConfiguration(values, provenance map[string]string) *Configuration {
	c := &Configuration{
		values:     make(map[string]string, len(values)),
		provenance: make(map[string]string, len(provenance)),
	}
	for k, v := range values {
		c.values[k] = v
	}
	for k, v := range provenance {
		c.provenance[k] = v
	}

	return c
}

// Empty returns a snapshot with no keys.
func Empty() *Configuration {
	return NewConfiguration(nil, nil)
}

// Get returns the raw string value for key, or an error wrapping
// [ErrKeyNotFound].
func (c *Configuration) Get(key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	return v, nil
}

// GetInt returns the value for key coerced to int. Fails wrapping
// [ErrKeyNotFound] or [ErrValueType].
func (c *Configuration) GetInt(key string) (int, error) {
	v, err := c.Get(key)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an int: %q", ErrValueType, key, v)
	}

	return n, nil
}

// GetFloat returns the value for key coerced to float64.
func (c *Configuration) GetFloat(key string) (float64, error) {
	v, err := c.Get(key)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a float: %q", ErrValueType, key, v)
	}

	return f, nil
}

// GetBool returns the value for key coerced to bool ("true"/"false", "1"/"0").
func (c *Configuration) GetBool(key string) (bool, error) {
	v, err := c.Get(key)
	if err != nil {
		return false, err
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a bool: %q", ErrValueType, key, v)
	}

	return b, nil
}

// GetDuration returns the value for key parsed with [time.ParseDuration].
func (c *Configuration) GetDuration(key string) (time.Duration, error) {
	v, err := c.Get(key)
	if err != nil {
		return 0, err
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a duration: %q", ErrValueType, key, v)
	}

	return d, nil
}

// GetStrings returns the value for key split on "," with surrounding
// whitespace trimmed per element. This is the list representation produced
// by the YAML/JSON flatteners.
func (c *Configuration) GetStrings(key string) ([]string, error) {
	v, err := c.Get(key)
	if err != nil {
		return nil, err
	}
	if v == "" {
		return []string{}, nil
	}

	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts, nil
}

// Group returns the nested group under prefix as a new snapshot: every key
// of the form prefix+"."+rest appears as rest. Provenance is carried over.
// An unknown prefix yields an empty snapshot.
func (c *Configuration) Group(prefix string) *Configuration {
	group := &Configuration{
		values:     make(map[string]string),
		provenance: make(map[string]string),
	}
	cut := prefix + "."
	for k, v := range c.values {
		rest, ok := strings.CutPrefix(k, cut)
		if !ok {
			continue
		}
		group.values[rest] = v
		if origin, ok := c.provenance[k]; ok {
			group.provenance[rest] = origin
		}
	}

	return group
}

// Has reports whether key is present.
func (c *Configuration) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// IsEmpty reports whether the snapshot has no keys.
func (c *Configuration) IsEmpty() bool {
	return len(c.values) == 0
}

// Len returns the number of keys.
func (c *Configuration) Len() int {
	return len(c.values)
}

// Keys returns all keys in sorted order.
func (c *Configuration) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// All returns a copy of the whole mapping.
func (c *Configuration) All() map[string]string {
	out := make(map[string]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}

	return out
}

// Provenance returns the file that supplied the final value of key, when
// the producing source recorded it.
func (c *Configuration) Provenance(key string) (string, bool) {
	origin, ok := c.provenance[key]
	return origin, ok
}
