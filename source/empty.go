package source

import "github.com/ggetv/cfg4j/environment"

// EmptySource answers every query, for any environment, with an empty
// snapshot. Useful as a neutral element in composites and as a stand-in
// during tests.
type EmptySource struct{}

// Configuration implements [Source].
func (EmptySource) Configuration(environment.Environment) (*Configuration, error) {
	return Empty(), nil
}
