package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Store(t *testing.T) {
	root := t.TempDir()
	s := NewDiskStore(root)

	location, err := s.Store(context.Background(), []byte("Hello World"))
	require.NoError(t, err)

	assert.Equal(t, root, filepath.Dir(location))

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello World"), data)
}

func TestDiskStore_CreatesRootDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "blobs")
	s := NewDiskStore(root)

	_, err := s.Store(context.Background(), []byte("payload"))
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDiskStore_SamePayloadDistinctLocators(t *testing.T) {
	s := NewDiskStore(t.TempDir())

	first, err := s.Store(context.Background(), []byte("same bytes"))
	require.NoError(t, err)
	second, err := s.Store(context.Background(), []byte("same bytes"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "no deduplication: re-storing yields a fresh locator")
}

func TestDiskStore_UnwritableRoot(t *testing.T) {
	// Using a regular file as the root makes MkdirAll fail.
	blocked := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o600))

	s := NewDiskStore(blocked)

	_, err := s.Store(context.Background(), []byte("payload"))
	require.ErrorIs(t, err, ErrUnavailable)
}
