package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore writes blobs to a configured root directory on the local
// filesystem, one file per locator. The locator is the absolute path of the
// written file.
type DiskStore struct {
	root string
}

// NewDiskStore creates a DiskStore rooted at dir. The directory is created
// lazily on the first write.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{root: dir}
}

// Store writes data under a freshly generated UUID name inside the root
// directory, creating the directory if absent. Any failure wraps
// ErrUnavailable.
func (s *DiskStore) Store(ctx context.Context, data []byte) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating root directory: %v", ErrUnavailable, err)
	}

	location := filepath.Join(s.root, uuid.NewString())
	if err := os.WriteFile(location, data, 0o600); err != nil {
		return "", fmt.Errorf("%w: writing blob: %v", ErrUnavailable, err)
	}

	return location, nil
}
