// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package discovery lists the configuration files a source should load from
// a given root directory. Providers are policy objects: they decide which
// files to consider and in what order, while parsing and merging happen
// downstream.
//
// The order of the returned slice is a contract, not an accident: the merge
// engine applies files in this exact order with "later file wins" override
// semantics. Every provider documents how it orders its output.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// DefaultConfigFile is the file name the default provider looks for.
const DefaultConfigFile = "application.properties"

// FilesProvider yields the relative paths of the configuration files to load
// from root. Absence of the root directory or of a candidate file is not an
// error: providers return an empty slice and let the caller treat "no files"
// as "empty configuration". Any other filesystem failure is reported
// wrapping [ErrIO].
type FilesProvider interface {
	ConfigFiles(root string) ([]string, error)
}

// DefaultFilesProvider returns [DefaultConfigFile] when it exists under the
// root, nothing otherwise.
type DefaultFilesProvider struct{}

// ConfigFiles implements [FilesProvider].
func (DefaultFilesProvider) ConfigFiles(root string) ([]string, error) {
	ok, err := regularFileExists(filepath.Join(root, DefaultConfigFile))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return []string{DefaultConfigFile}, nil
}

// StaticFilesProvider returns a fixed list of relative paths, filtered down
// to the ones that exist under the root. Slice order is preserved and
// defines the override order: a key found in a later file wins.
type StaticFilesProvider struct {
	Files []string
}

// ConfigFiles implements [FilesProvider].
func (p StaticFilesProvider) ConfigFiles(root string) ([]string, error) {
	var files []string
	for _, rel := range p.Files {
		ok, err := regularFileExists(filepath.Join(root, rel))
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, rel)
		}
	}

	return files, nil
}

// GlobFilesProvider scans the root directory with filepath.Glob patterns.
// Matches of one pattern are sorted lexically; patterns are applied in
// slice order. A file matched by several patterns is reported once, at its
// first position. Later output wins on merge, so the last pattern holds the
// strongest override.
type GlobFilesProvider struct {
	Patterns []string
}

// ConfigFiles implements [FilesProvider].
func (p GlobFilesProvider) ConfigFiles(root string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	for _, pattern := range p.Patterns {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, fmt.Errorf("%w: bad pattern %q: %v", ErrIO, pattern, err)
		}
		sort.Strings(matches)

		for _, match := range matches {
			ok, err := regularFileExists(match)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}

			rel, err := filepath.Rel(root, match)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrIO, err)
			}
			if _, dup := seen[rel]; dup {
				continue
			}
			seen[rel] = struct{}{}
			files = append(files, rel)
		}
	}

	return files, nil
}

// regularFileExists reports whether path names an existing regular file.
// Absence (of the file or any path component) maps to (false, nil);
// directories are not config files and map to (false, nil) as well.
func regularFileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrIO, err)
	}

	return info.Mode().IsRegular(), nil
}
