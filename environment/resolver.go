// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import (
	"strings"
)

// Location is the physical address an [Environment] resolves to: a backend
// location token (for example a branch name) plus a relative path inside
// that location.
type Location struct {
	// Token selects the backend location, e.g. a branch of a versioned
	// file tree or a first-level directory of a plain one.
	Token string

	// Path is the sub-path within the location, slash-separated and
	// relative. Empty means the location root.
	Path string
}

// Resolver decomposes an environment name into a [Location]. Implementations
// are stateless policies injected into a configuration source at
// construction time.
type Resolver interface {
	Resolve(env Environment) (Location, error)
}

// FirstTokenResolver is the default resolution policy: the environment name
// is split on "/", the first token selects the backend location and the
// remaining tokens (rejoined with "/") form the relative path.
//
// "branchA/dir/file" resolves to {Token: "branchA", Path: "dir/file"},
// a name with no "/" resolves to the whole name with an empty path, and the
// empty name resolves to an empty Location.
type FirstTokenResolver struct{}

// Resolve implements [Resolver].
func (FirstTokenResolver) Resolve(env Environment) (Location, error) {
	token, path, _ := strings.Cut(env.Name(), "/")

	return Location{Token: token, Path: path}, nil
}

// SingleLocationResolver pins every environment to one backend location and
// treats the whole environment name as the relative path. Useful for
// backends that keep all environments as directories of a single tree.
type SingleLocationResolver struct {
	// Token is the fixed backend location returned for every environment.
	Token string
}

// Resolve implements [Resolver].
func (r SingleLocationResolver) Resolve(env Environment) (Location, error) {
	return Location{Token: r.Token, Path: env.Name()}, nil
}
