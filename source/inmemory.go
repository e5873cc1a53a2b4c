package source

import (
	"sync"

	"github.com/ggetv/cfg4j/environment"
)

// InMemorySource serves a fixed mapping, ignoring the environment. Reset
// swaps the whole mapping; snapshots handed out earlier are unaffected.
type InMemorySource struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewInMemorySource returns a source serving a copy of values.
func NewInMemorySource(values map[string]string) *InMemorySource {
	s := &InMemorySource{}
	s.Reset(values)

	return s
}

// Configuration implements [Source].
func (s *InMemorySource) Configuration(environment.Environment) (*Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return NewConfiguration(s.values, nil), nil
}

// Reset replaces the served mapping with a copy of values.
func (s *InMemorySource) Reset(values map[string]string) {
	next := make(map[string]string, len(values))
	for k, v := range values {
		next[k] = v
	}

	s.mu.Lock()
	s.values = next
	s.mu.Unlock()
}
