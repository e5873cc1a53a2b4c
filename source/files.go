// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"fmt"
	"path/filepath"

	"github.com/ggetv/cfg4j/discovery"
	"github.com/ggetv/cfg4j/environment"
	"github.com/ggetv/cfg4j/merge"
	"github.com/ggetv/cfg4j/properties"
	"github.com/rs/zerolog"
)

// FilesConfig configures a [FilesSource]. Only RootDir is required; every
// other field has a sensible default.
type FilesConfig struct {
	// RootDir is the directory holding the configuration tree. Required.
	RootDir string

	// Resolver maps an environment to a location within RootDir.
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

// FilesSource serves configuration from a local directory tree. The
// environment's resolved location token and sub-path select a directory
// under the root; a nonexistent directory yields an empty snapshot, not an
// error. Each query re-discovers and re-merges.
type FilesSource struct {
	rootDir  string
	resolver environment.Resolver
	files    discovery.FilesProvider
	selector *properties.Selector
	log      zerolog.Logger
}

// NewFilesSource validates cfg, fills in defaults, and returns the source.
func NewFilesSource(cfg FilesConfig) (*FilesSource, error) {
	if cfg.RootDir == "" {
		return nil, fmt.Errorf("%w: RootDir is required", ErrInvalidConfig)
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

	return &FilesSource{
		rootDir:  cfg.RootDir,
		resolver: cfg.Resolver,
		files:    cfg.FilesProvider,
		selector: cfg.Selector,
		log:      cfg.Logger,
	}, nil
}

// Configuration implements [Source].
func (s *FilesSource) Configuration(env environment.Environment) (*Configuration, error) {
	loc, err := s.resolver.Resolve(env)
	if err != nil {
		return nil, fmt.Errorf("resolving environment %q: %w", env.Name(), err)
	}

	dir := filepath.Join(s.rootDir, filepath.FromSlash(loc.Token), filepath.FromSlash(loc.Path))
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
