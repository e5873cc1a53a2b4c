// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merge folds a list of discovered configuration files into one
// flat key/value namespace with deterministic precedence.
package merge

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/ggetv/cfg4j/properties"
)

// Result is the outcome of one merge: the combined flat mapping plus, for
// every key, the relative path of the file that supplied its final value.
type Result struct {
	Values     map[string]string
	Provenance map[string]string
}

// ParseError reports that a discovered file could not be parsed by its
// selected provider. It aborts the whole merge: no partial mapping is
// returned alongside it.
type ParseError struct {
	// File is the path of the offending file, relative to the merge root.
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Files loads every file in the list (paths relative to root), parses each
// through the provider its name selects, and merges the mappings in list
// order with "later file wins" per key. The list order therefore IS the
// override precedence.
//
// A parse failure on any file fails the whole merge with a [*ParseError]
// naming that file. A file that vanished between discovery and merge is
// treated as absent and skipped; any other open failure aborts the merge.
// Zero files merge to an empty Result.
func Files(root string, files []string, selector *properties.Selector) (Result, error) {
	res := Result{
		Values:     make(map[string]string),
		Provenance: make(map[string]string),
	}

	for _, rel := range files {
		parsed, err := loadFile(filepath.Join(root, rel), filepath.Base(rel), selector)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if errors.Is(err, properties.ErrMalformed) {
			return Result{}, &ParseError{File: rel, Err: err}
		}
		if err != nil {
			return Result{}, fmt.Errorf("loading %s: %w", rel, err)
		}

		// WithOverride: per-key last-wins, keys unique to earlier files
		// survive, and a later "" still replaces an earlier value.
		if err := mergo.Merge(&res.Values, parsed, mergo.WithOverride); err != nil {
			return Result{}, fmt.Errorf("merging %s: %w", rel, err)
		}
		for key := range parsed {
			res.Provenance[key] = rel
		}
	}

	return res, nil
}

// loadFile opens and parses one file with the provider selected by its base
// name.
func loadFile(path, name string, selector *properties.Selector) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return selector.Provider(name).Properties(f)
}
