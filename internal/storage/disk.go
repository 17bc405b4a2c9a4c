// Package storage persists payload bytes under a single storage root.
// Object names are generated, never derived from user input, so concurrent
// uploads cannot collide or traverse outside the root.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

// Save writes data under a fresh random name and returns its absolute path.
// The storage root is created on first use.
func (s *DiskStore) Save(data []byte) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("create storage root: %w", err)
	}
	path := filepath.Join(s.root, uuid.NewString())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write payload: %w", err)
	}
	return path, nil
}

// Read returns the bytes at path. The error wraps fs.ErrNotExist when the
// file is absent.
func (s *DiskStore) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Write stores data at an exact path, replacing any previous content.
// Derivative writers use it; last writer wins.
func (s *DiskStore) Write(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// DerivativePath is the on-disk location of the width-sized variant of the
// original at path.
func DerivativePath(path string, width int) string {
	return fmt.Sprintf("%s_%d", path, width)
}
