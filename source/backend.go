// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/ggetv/cfg4j/discovery"
	"github.com/ggetv/cfg4j/environment"
	"github.com/ggetv/cfg4j/merge"
	"github.com/ggetv/cfg4j/properties"
	"github.com/rs/zerolog"
)

// Backend is the contract an external repository collaborator satisfies: it
// owns a resource (for example a checked-out tree of a remote repository),
// acquires it in Init, releases it in Close, and maps a location token to
// the local directory holding that location's files. The returned directory
// may not exist; discovery treats that as "no files". Serializing its own
// refresh against readers is the backend's responsibility.
type Backend interface {
	Lifecycle
	RootDirectory(token string) (string, error)
}

// BackendConfig configures a [BackendSource]. Backend is required.
type BackendConfig struct {
	Backend Backend

	// Resolver maps an environment to a location within the backend.
	// Defaults to [environment.FirstTokenResolver].
	Resolver environment.Resolver

	// FilesProvider lists the files to load per query.
	// Defaults to [discovery.DefaultFilesProvider].
	FilesProvider discovery.FilesProvider

	// Selector picks the parser per file.
	// Defaults to [properties.DefaultSelector].
	Selector *properties.Selector

	// Logger receives per-query debug records. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// BackendSource serves configuration from an external backend's local tree.
// It owns the lifecycle window: Init and Close are forwarded to the backend
// exactly once each, and queries outside the window fail wrapping
// [ErrLifecycle]. Within the window every query re-resolves, re-discovers,
// and re-merges against whatever the backend's tree currently holds.
type BackendSource struct {
	backend  Backend
	resolver environment.Resolver
	files    discovery.FilesProvider
	selector *properties.Selector
	log      zerolog.Logger

	mu    sync.RWMutex
	state lifecycleState
}

// NewBackendSource validates cfg, fills in defaults, and returns the source.
func NewBackendSource(cfg BackendConfig) (*BackendSource, error) {
	if cfg.Backend == nil {
		return nil, fmt.Errorf("%w: Backend is required", ErrInvalidConfig)
	}
	if cfg.Resolver == nil {
		cfg.Resolver = environment.FirstTokenResolver{}
	}
	if cfg.FilesProvider == nil {
		cfg.FilesProvider = discovery.DefaultFilesProvider{}
	}
	if cfg.Selector == nil {
		cfg.Selector = properties.DefaultSelector()
	}

	return &BackendSource{
		backend:  cfg.Backend,
		resolver: cfg.Resolver,
		files:    cfg.FilesProvider,
		selector: cfg.Selector,
		log:      cfg.Logger,
	}, nil
}

// Init implements [Lifecycle]: it acquires the backend's resource. Calling
// Init twice, or after Close, fails wrapping [ErrLifecycle].
func (s *BackendSource) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateNew {
		return fmt.Errorf("%w: Init on an already initialized or closed source", ErrLifecycle)
	}
	if err := s.backend.Init(); err != nil {
		return fmt.Errorf("initializing backend: %w", err)
	}

	s.state = stateReady

	return nil
}

// Configuration implements [Source].
func (s *BackendSource) Configuration(env environment.Environment) (*Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != stateReady {
		return nil, fmt.Errorf("%w: Configuration outside the Init/Close window", ErrLifecycle)
	}

	loc, err := s.resolver.Resolve(env)
	if err != nil {
		return nil, fmt.Errorf("resolving environment %q: %w", env.Name(), err)
	}

	root, err := s.backend.RootDirectory(loc.Token)
	if err != nil {
		return nil, fmt.Errorf("locating backend root for %q: %w", loc.Token, err)
	}

	dir := filepath.Join(root, filepath.FromSlash(loc.Path))
	files, err := s.files.ConfigFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("discovering config files for environment %q: %w", env.Name(), err)
	}

	res, err := merge.Files(dir, files, s.selector)
	if err != nil {
		return nil, fmt.Errorf("environment %q: %w", env.Name(), err)
	}

	s.log.Debug().
		Str("environment", env.Name()).
		Str("dir", dir).
		Strs("files", files).
		Int("keys", len(res.Values)).
		Msg("configuration merged")

	return NewConfiguration(res.Values, res.Provenance), nil
}

// Close implements [Lifecycle]: it releases the backend's resource. Close
// before Init, or twice, fails wrapping [ErrLifecycle].
func (s *BackendSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateReady {
		return fmt.Errorf("%w: Close outside the Init window", ErrLifecycle)
	}

	s.state = stateClosed
	if err := s.backend.Close(); err != nil {
		return fmt.Errorf("closing backend: %w", err)
	}

	return nil
}
