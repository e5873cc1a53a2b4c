// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider offers a typed query facade over a configuration source
// pinned to one environment.
package provider

import (
	"fmt"
	"time"

	"github.com/ggetv/cfg4j/environment"
	"github.com/ggetv/cfg4j/source"
)

// Config configures a [Provider]. Source is required; Environment defaults
// to [environment.Default].
type Config struct {
	Source      source.Source
	Environment environment.Environment
}

// Provider binds a source to one environment and exposes typed lookups.
// Every getter queries the source afresh, so a refreshed backend is visible
// on the next call without any invalidation protocol. Callers that need a
// stable view across several lookups should take one [Provider.All] or
// work with the snapshot from the source directly.
type Provider struct {
	src source.Source
	env environment.Environment
}

// New validates cfg and returns the facade.
func New(cfg Config) (*Provider, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("%w: Source is required", source.ErrInvalidConfig)
	}

	return &Provider{src: cfg.Source, env: cfg.Environment}, nil
}

func (p *Provider) snapshot() (*source.Configuration, error) {
	cfg, err := p.src.Configuration(p.env)
	if err != nil {
		return nil, fmt.Errorf("querying configuration source: %w", err)
	}

	return cfg, nil
}

// GetString returns the raw value of key.
func (p *Provider) GetString(key string) (string, error) {
	cfg, err := p.snapshot()
	if err != nil {
		return "", err
	}

	return cfg.Get(key)
}

// GetInt returns the value of key coerced to int.
func (p *Provider) GetInt(key string) (int, error) {
	cfg, err := p.snapshot()
	if err != nil {
		return 0, err
	}

	return cfg.GetInt(key)
}

// GetBool returns the value of key coerced to bool.
func (p *Provider) GetBool(key string) (bool, error) {
	cfg, err := p.snapshot()
	if err != nil {
		return false, err
	}

	return cfg.GetBool(key)
}

// GetFloat returns the value of key coerced to float64.
func (p *Provider) GetFloat(key string) (float64, error) {
	cfg, err := p.snapshot()
	if err != nil {
		return 0, err
	}

	return cfg.GetFloat(key)
}

// GetDuration returns the value of key parsed as a duration.
func (p *Provider) GetDuration(key string) (time.Duration, error) {
	cfg, err := p.snapshot()
	if err != nil {
		return 0, err
	}

	return cfg.GetDuration(key)
}

// GetStrings returns the value of key as a comma-separated list.
func (p *Provider) GetStrings(key string) ([]string, error) {
	cfg, err := p.snapshot()
	if err != nil {
		return nil, err
	}

	return cfg.GetStrings(key)
}

// Has reports whether key is currently present.
func (p *Provider) Has(key string) (bool, error) {
	cfg, err := p.snapshot()
	if err != nil {
		return false, err
	}

	return cfg.Has(key), nil
}

// All returns the whole current mapping.
func (p *Provider) All() (map[string]string, error) {
	cfg, err := p.snapshot()
	if err != nil {
		return nil, err
	}

	return cfg.All(), nil
}
