package storage

import (
	"context"
	"fmt"

	"africlimate/internal/config"
)

// DeploymentMode represents the deployment environment
type DeploymentMode string

const (
	DeploymentLocal DeploymentMode = "local"
	DeploymentGCS   DeploymentMode = "gcs"
)

// NewClient creates a snapshot storage client based on deployment mode and
// configuration.
func NewClient(ctx context.Context, mode DeploymentMode, cfg *config.Config) (Client, error) {
	switch mode {
	case DeploymentLocal:
		dir := cfg.LocalSnapshotsDir
		if dir == "" {
			dir = "snapshots"
		}
		client, err := NewLocalClient(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage client: %w", err)
		}
		return client, nil

	case DeploymentGCS:
		client, err := NewGCSClient(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
		}
		return client, nil

	default:
		return nil, fmt.Errorf("unsupported deployment mode: %s", mode)
	}
}
