package storage

import (
	"context"
	"io"
)

// ObjectStorage is the object-store surface the file workflows depend on.
// Implementations: MinIO (S3-compatible) for deployments, local disk for
// development and tests.
type ObjectStorage interface {
	// Put stores the object under path. size is the declared length in bytes.
	Put(ctx context.Context, path string, r io.Reader, size int64, contentType string) error

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, path string) error

	// PublicURL returns the URL the stored object is reachable at.
	PublicURL(path string) string
}
