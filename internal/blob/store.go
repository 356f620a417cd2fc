// Package blob stores resume and transcript files behind stable string
// paths. Backends: local filesystem and any S3-compatible object store.
package blob

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no object exists at the given path.
var ErrNotFound = errors.New("blob not found")

type Store interface {
	// Put writes data under prefix (e.g. "resumes") with the given file
	// name and returns the stable path it can be read back from.
	Put(ctx context.Context, prefix, name string, data []byte) (string, error)
	Get(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
}

// FSStore keeps objects under a base directory, one subdirectory per prefix.
type FSStore struct {
	baseDir string
}

func NewFSStore(baseDir string) (*FSStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FSStore{baseDir: baseDir}, nil
}

func (s *FSStore) Put(ctx context.Context, prefix, name string, data []byte) (string, error) {
	dir := filepath.Join(s.baseDir, prefix)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s dir: %w", prefix, err)
	}

	rel := filepath.Join(prefix, filepath.Base(name))
	if err := os.WriteFile(filepath.Join(s.baseDir, rel), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	return rel, nil
}

func (s *FSStore) Get(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, filepath.Clean(path)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *FSStore) Delete(ctx context.Context, path string) error {
	err := os.Remove(filepath.Join(s.baseDir, filepath.Clean(path)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// DeletePrefix removes every object under a prefix. Used by the demo-reset
// tool.
func (s *FSStore) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	dir := filepath.Join(s.baseDir, prefix)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
