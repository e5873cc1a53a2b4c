package properties

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML parses a YAML mapping into a flat dotted-key mapping. The document
// root must be a mapping; nesting is flattened, sequences are comma-joined.
type YAML struct{}

// Properties implements [Provider].
func (YAML) Properties(r io.Reader) (map[string]string, error) {
	var root map[string]any
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		// An empty document is an empty mapping, not a parse failure.
		if errors.Is(err, io.EOF) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return flatten(root), nil
}
