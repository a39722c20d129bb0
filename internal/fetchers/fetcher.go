// Package fetchers downloads the climate datasets from remote sources.
// Fetching happens once at startup, before the dataset loader runs; the
// dashboard never re-fetches while serving.
package fetchers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DatasetFetcher downloads CSV datasets over HTTP.
type DatasetFetcher struct {
	client *resty.Client
	log    *zap.SugaredLogger
}

// NewDatasetFetcher creates a fetcher with sensible timeouts and retries.
func NewDatasetFetcher(log *zap.SugaredLogger) *DatasetFetcher {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetRetryCount(3)
	client.SetRetryWaitTime(2 * time.Second)

	return &DatasetFetcher{client: client, log: log}
}

// FetchDataset downloads one CSV dataset and writes it to destPath.
// A failure here is fatal to startup, like any other unavailable dataset.
func (f *DatasetFetcher) FetchDataset(ctx context.Context, url, destPath string) error {
	f.log.Infow("fetching dataset", "url", url, "dest", destPath)

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/csv").
		Get(url)
	if err != nil {
		return fmt.Errorf("failed to fetch dataset from %s: %w", url, err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("dataset source %s returned status %d", url, resp.StatusCode())
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}
	if err := os.WriteFile(destPath, resp.Body(), 0644); err != nil {
		return fmt.Errorf("failed to write dataset to %s: %w", destPath, err)
	}

	f.log.Infow("dataset fetched", "dest", destPath, "bytes", len(resp.Body()))
	return nil
}

// Source pairs a remote dataset URL with its local destination path.
type Source struct {
	URL  string
	Dest string
}

// FetchAll downloads every configured remote dataset. Sources with an
// empty URL are skipped; the loader then uses whatever already exists at
// the local path.
func (f *DatasetFetcher) FetchAll(ctx context.Context, sources []Source) error {
	for _, src := range sources {
		if src.URL == "" {
			continue
		}
		if err := f.FetchDataset(ctx, src.URL, src.Dest); err != nil {
			return err
		}
	}
	return nil
}
