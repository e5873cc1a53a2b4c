// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ggetv/cfg4j/discovery"
	"github.com/ggetv/cfg4j/environment"
	"github.com/ggetv/cfg4j/merge"
	"github.com/ggetv/cfg4j/properties"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// workTreePrefix names the per-instance directory an [HTTPSource] keeps
// under its temp dir.
const workTreePrefix = "cfg4j-http-config-repository"

// HTTPConfig configures an [HTTPSource]. BaseURL and Files are required.
type HTTPConfig struct {
	// BaseURL is the remote root. A file of environment E resolves to
	// BaseURL/<location token>/<relative path>/<file name>.
	BaseURL string

	// Files are the remote file names fetched per environment, in override
	// order (later wins on merge). A name may carry slash-separated
	// sub-directories (conf/app.yaml); they are mirrored into the work
	// tree.
	Files []string

	// Resolver maps an environment to a location below BaseURL.
	// Defaults to [environment.FirstTokenResolver].
	Resolver environment.Resolver

	// Selector picks the parser per file.
	// Defaults to [properties.DefaultSelector].
	Selector *properties.Selector

	// TempDir hosts the local work tree. Defaults to [os.TempDir].
	TempDir string

	// Client is the HTTP client used for fetches. Defaults to resty.New().
	Client *resty.Client

	// Logger receives fetch and lifecycle records. Defaults to a no-op
	// logger.
	Logger zerolog.Logger
}

// HTTPSource mirrors a remote configuration tree over plain HTTP GET into a
// local work tree and serves queries from that tree only.
//
// Lifecycle: Init prepares a unique work tree, Refresh downloads one
// environment's files into it, Close removes it. Refresh is serialized
// against queries, so a query never observes a half-updated tree. Queries
// before Init or after Close fail wrapping [ErrLifecycle]; a query for an
// environment that was never refreshed sees an empty snapshot, the same as
// an absent directory.
type HTTPSource struct {
	baseURL  string
	files    []string
	resolver environment.Resolver
	selector *properties.Selector
	tempDir  string
	client   *resty.Client
	log      zerolog.Logger

	mu      sync.RWMutex
	state   lifecycleState
	workDir string
}

type lifecycleState int

const (
	stateNew lifecycleState = iota
	stateReady
	stateClosed
)

// NewHTTPSource validates cfg, fills in defaults, and returns the source.
// The source holds no external resource until [HTTPSource.Init] is called.
func NewHTTPSource(cfg HTTPConfig) (*HTTPSource, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}
	if len(cfg.Files) == 0 {
		return nil, fmt.Errorf("%w: Files is required", ErrInvalidConfig)
	}
	if cfg.Resolver == nil {
		cfg.Resolver = environment.FirstTokenResolver{}
	}
	if cfg.Selector == nil {
		cfg.Selector = properties.DefaultSelector()
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if cfg.Client == nil {
		cfg.Client = resty.New()
	}

	return &HTTPSource{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		files:    append([]string(nil), cfg.Files...),
		resolver: cfg.Resolver,
		selector: cfg.Selector,
		tempDir:  cfg.TempDir,
		client:   cfg.Client,
		log:      cfg.Logger,
	}, nil
}

// Init implements [Lifecycle]: it creates the local work tree. Calling Init
// twice, or after Close, fails wrapping [ErrLifecycle].
func (s *HTTPSource) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateNew {
		return fmt.Errorf("%w: Init on an already initialized or closed source", ErrLifecycle)
	}

	dir := filepath.Join(s.tempDir, workTreePrefix+"-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating work tree: %w", err)
	}

	s.workDir = dir
	s.state = stateReady
	s.log.Debug().Str("dir", dir).Msg("http source initialized")

	return nil
}

// Refresh downloads the configured files of env into the work tree,
// replacing whatever the previous refresh left there. A remote 404 counts
// as absence: the stale local copy, if any, is removed and no error is
// reported. Refresh holds the write lock for its whole duration, so
// concurrent queries wait rather than read a partial tree.
func (s *HTTPSource) Refresh(env environment.Environment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateReady {
		return fmt.Errorf("%w: Refresh outside the Init/Close window", ErrLifecycle)
	}

	loc, err := s.resolver.Resolve(env)
	if err != nil {
		return fmt.Errorf("resolving environment %q: %w", env.Name(), err)
	}

	destDir := filepath.Join(s.workDir, filepath.FromSlash(loc.Token), filepath.FromSlash(loc.Path))
	if err := os.MkdirAll(destDir, 0o700); err != nil {
		return fmt.Errorf("creating environment dir: %w", err)
	}

	for _, name := range s.files {
		url := s.baseURL + "/" + path.Join(loc.Token, loc.Path, name)
		dest := filepath.Join(destDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dest), 0o700); err != nil {
			return fmt.Errorf("creating dir for %s: %w", name, err)
		}

		resp, err := s.client.R().Get(url)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", url, err)
		}

		switch {
		case resp.StatusCode() == http.StatusNotFound:
			if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("removing stale %s: %w", dest, err)
			}
		case resp.IsError():
			return fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode())
		default:
			if err := os.WriteFile(dest, resp.Body(), 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}
		}
	}

	s.log.Debug().
		Str("environment", env.Name()).
		Str("dir", destDir).
		Msg("http source refreshed")

	return nil
}

// Configuration implements [Source]. It reads the local work tree only;
// call [HTTPSource.Refresh] first to pick up remote changes.
func (s *HTTPSource) Configuration(env environment.Environment) (*Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != stateReady {
		return nil, fmt.Errorf("%w: Configuration outside the Init/Close window", ErrLifecycle)
	}

	loc, err := s.resolver.Resolve(env)
	if err != nil {
		return nil, fmt.Errorf("resolving environment %q: %w", env.Name(), err)
	}

	dir := filepath.Join(s.workDir, filepath.FromSlash(loc.Token), filepath.FromSlash(loc.Path))
	provider := discovery.StaticFilesProvider{Files: s.files}
	files, err := provider.ConfigFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("discovering config files for environment %q: %w", env.Name(), err)
	}

	res, err := merge.Files(dir, files, s.selector)
	if err != nil {
		return nil, fmt.Errorf("environment %q: %w", env.Name(), err)
	}

	return NewConfiguration(res.Values, res.Provenance), nil
}

// Close implements [Lifecycle]: it removes the work tree. Further queries
// fail wrapping [ErrLifecycle]. Close before Init, or twice, fails the same
// way.
func (s *HTTPSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateReady {
		return fmt.Errorf("%w: Close outside the Init window", ErrLifecycle)
	}

	s.state = stateClosed
	if err := os.RemoveAll(s.workDir); err != nil {
		return fmt.Errorf("removing work tree: %w", err)
	}

	s.log.Debug().Str("dir", s.workDir).Msg("http source closed")

	return nil
}
