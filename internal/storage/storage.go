package storage

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the blob backend could not complete a write
// (disk full, permission denied, bucket unreachable). The caller surfaces it
// as a server-side failure and does not create the metadata record.
var ErrUnavailable = errors.New("storage unavailable")

// BlobStore persists raw content bytes under a generated, unguessable name
// and returns the opaque locator. The core exposes no read or delete
// operations; only metadata is served back to clients.
type BlobStore interface {
	Store(ctx context.Context, data []byte) (string, error)
}
