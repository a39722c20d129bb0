package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LocalClient stores snapshots on the local filesystem.
type LocalClient struct {
	baseDir string
}

// NewLocalClient creates a local storage client rooted at baseDir.
func NewLocalClient(baseDir string) (*LocalClient, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}
	return &LocalClient{baseDir: baseDir}, nil
}

// Close is a no-op for local storage.
func (l *LocalClient) Close() error {
	return nil
}

// StoreFile writes file data under the base directory, creating parents.
func (l *LocalClient) StoreFile(ctx context.Context, filePath string, fileData []byte) error {
	fullPath := filepath.Join(l.baseDir, filePath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filePath, err)
	}
	if err := os.WriteFile(fullPath, fileData, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", fullPath, err)
	}
	return nil
}

// GetFile reads a file by its snapshot-relative path.
func (l *LocalClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.baseDir, filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}

// ListSnapshots lists snapshot folders containing an index.html, newest
// first.
func (l *LocalClient) ListSnapshots(ctx context.Context, limit int) ([]string, error) {
	root := filepath.Join(l.baseDir, "snapshots")

	var folders []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if info.Name() == "index.html" {
			rel, relErr := filepath.Rel(l.baseDir, filepath.Dir(path))
			if relErr == nil {
				folders = append(folders, filepath.ToSlash(rel))
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk snapshots directory: %w", err)
	}

	// Folder names are timestamped, so sorting descending gives newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(folders)))

	if limit > 0 && limit < len(folders) {
		folders = folders[:limit]
	}
	return folders, nil
}
