// Package environment defines the logical configuration scope used to
// address a configuration source and the strategies that map a scope to a
// physical location inside a backing store.
package environment

// Environment identifies a logical configuration scope, for example an
// application or deployment variant. It is an immutable value: construct it
// with [New] and pass it by value.
type Environment struct {
	name string
}

// New returns an Environment with the given name. The name is opaque to this
// package; a [Resolver] decides how to decompose it.
func New(name string) Environment {
	return Environment{name: name}
}

// Default returns the environment with an empty name. With the default
// resolver it addresses the root of the backing store.
func Default() Environment {
	return Environment{}
}

// Name returns the environment name as supplied to [New].
func (e Environment) Name() string {
	return e.name
}

func (e Environment) String() string {
	return e.name
}
