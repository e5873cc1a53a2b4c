package properties

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON parses a JSON object into a flat dotted-key mapping, sharing the
// flattening rules of [YAML]. Numbers keep their literal text form so large
// integers survive the round trip to string values.
type JSON struct{}

// Properties implements [Provider].
func (JSON) Properties(r io.Reader) (map[string]string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return flatten(root), nil
}
