// Package jsonstore persists typed collections as flat JSON files, one file
// per collection holding a top-level array.
package jsonstore

import (
	"os"
	"path/filepath"
)

// Store is a data directory holding one JSON file per collection
type Store struct {
	dir string
}

// New creates a store rooted at dir
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the location of a collection file
func (s *Store) Path(file string) string {
	return filepath.Join(s.dir, file)
}

// ResolveDir returns the first candidate that is an existing directory.
// When none exists the first candidate is returned so callers still get a
// deterministic location to report in diagnostics.
func ResolveDir(candidates ...string) string {
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			return c
		}
	}
	if len(candidates) == 0 {
		return "."
	}
	return candidates[0]
}
