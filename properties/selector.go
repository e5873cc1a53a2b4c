// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package properties

import "strings"

// Binding associates a [Provider] with the file name suffixes it handles.
type Binding struct {
	Provider Provider
	Suffixes []string
}

// Selector picks the [Provider] for a configuration file by the literal
// substring after the last "." of its name. No normalization is applied:
// "CONFIG.YAML" does not match a binding for "yaml". A name with no dot, or
// with an unbound suffix, maps to the default provider.
type Selector struct {
	def      Provider
	bySuffix map[string]Provider
}

// NewSelector builds a Selector from the designated default provider and an
// open-ended set of suffix bindings. Later bindings win when two claim the
// same suffix.
func NewSelector(def Provider, bindings ...Binding) *Selector {
	bySuffix := make(map[string]Provider)
	for _, b := range bindings {
		for _, suffix := range b.Suffixes {
			bySuffix[suffix] = b.Provider
		}
	}

	return &Selector{def: def, bySuffix: bySuffix}
}

// DefaultSelector returns the standard suffix table:
// {yaml, yml} → [YAML], {json} → [JSON], anything else → [PropertySyntax].
func DefaultSelector() *Selector {
	return NewSelector(
		PropertySyntax{},
		Binding{Provider: YAML{}, Suffixes: []string{"yaml", "yml"}},
		Binding{Provider: JSON{}, Suffixes: []string{"json"}},
	)
}

// Provider returns the provider bound to filename's suffix, or the default
// provider when nothing matches.
func (s *Selector) Provider(filename string) Provider {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return s.def
	}

	if p, ok := s.bySuffix[filename[i+1:]]; ok {
		return p
	}

	return s.def
}
