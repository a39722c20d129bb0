// Package storage persists exported dashboard snapshots either on the
// local filesystem or in a GCS bucket, behind one client interface.
package storage

import (
	"context"
)

// Client defines the storage operations the snapshot exporter needs.
type Client interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores file data under a snapshot-relative path
	StoreFile(ctx context.Context, filePath string, fileData []byte) error

	// GetFile retrieves a file by its snapshot-relative path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListSnapshots lists snapshot folders, newest first, up to limit
	ListSnapshots(ctx context.Context, limit int) ([]string, error)
}
