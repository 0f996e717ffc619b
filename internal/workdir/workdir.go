// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workdir manages the scratch directory that holds intermediate
// conversion files.
package workdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultName is the scratch directory created under ~/Documents.
const DefaultName = "pdf_converter_files"

// Failure records one file that could not be removed.
type Failure struct {
	Path string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("removing %s: %v", f.Path, f.Err)
}

// CleanResult summarises a Clean run.
type CleanResult struct {
	Removed  int
	Failures []Failure
}

// HasFailures reports whether any file survived the purge.
func (r CleanResult) HasFailures() bool {
	return len(r.Failures) > 0
}

// DefaultDir returns ~/Documents/pdf_converter_files.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, "Documents", DefaultName), nil
}

// Prepare ensures dir exists, creating parents as needed, and returns it.
// An empty dir resolves to DefaultDir.
func Prepare(dir string) (string, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating working directory %s: %w", dir, err)
	}
	return dir, nil
}

// remove is swapped in tests to simulate files that cannot be deleted.
var remove = os.Remove

// Clean deletes every regular file directly inside dir. Subdirectories are
// left alone. A file that cannot be removed is recorded and the purge
// continues with the rest.
func Clean(dir string) CleanResult {
	var result CleanResult

	entries, err := os.ReadDir(dir)
	if err != nil {
		result.Failures = append(result.Failures, Failure{Path: dir, Err: err})
		return result
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := remove(path); err != nil {
			result.Failures = append(result.Failures, Failure{Path: path, Err: err})
			continue
		}
		result.Removed++
	}
	return result
}
