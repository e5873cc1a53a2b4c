package properties

import "io"

// Provider parses one configuration format into a flat key/value mapping
// with dotted-path keys. Malformed input fails with an error wrapping
// [ErrMalformed]; a provider never returns partial data alongside an error.
type Provider interface {
	Properties(r io.Reader) (map[string]string, error)
}
