package source

import "github.com/ggetv/cfg4j/environment"

// Source answers configuration queries scoped by environment. The returned
// snapshot is immutable; successive calls may observe different backend
// state but a returned snapshot never changes.
type Source interface {
	Configuration(env environment.Environment) (*Configuration, error)
}

// Lifecycle is implemented by sources holding external resources. Init
// acquires the resource (for example, a local work tree), Close releases
// it. Each is called once per source instance, regardless of how many
// queries happen in between.
type Lifecycle interface {
	Init() error
	Close() error
}
