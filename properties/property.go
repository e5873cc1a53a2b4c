// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package properties

import (
	"fmt"
	"io"

	props "github.com/magiconair/properties"
)

// PropertySyntax parses Java-style .properties content (key=value lines,
// "#"/"!" comments, backslash continuations, ${key} expansion). It is the
// designated default provider of [DefaultSelector].
type PropertySyntax struct{}

// Properties implements [Provider].
func (PropertySyntax) Properties(r io.Reader) (map[string]string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading properties content: %w", err)
	}

	parsed, err := props.Load(buf, props.UTF8)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return parsed.Map(), nil
}
