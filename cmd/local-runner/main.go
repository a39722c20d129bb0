// Command local-runner exports one dashboard snapshot to the local
// snapshots directory and exits. Useful for eyeballing chart output
// without starting the HTTP server.
package main

import (
	"context"
	"time"

	"africlimate/internal/charts"
	"africlimate/internal/config"
	"africlimate/internal/dataset"
	"africlimate/internal/logger"
	"africlimate/internal/reports"
	"africlimate/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err.Error())
	}
	defer log.Sync()

	data, err := dataset.Load(cfg.TempDataPath, cfg.CO2DataPath)
	if err != nil {
		log.Fatalw("failed to load datasets", "error", err)
	}

	storageClient, err := storage.NewClient(ctx, storage.DeploymentLocal, cfg)
	if err != nil {
		log.Fatalw("failed to initialize local storage", "error", err)
	}
	defer storageClient.Close()

	snapshotter := reports.NewSnapshotter(data, charts.NewChartGenerator(), reports.NewPageBuilder(), storageClient, log)
	folder, err := snapshotter.Export(ctx, time.Now())
	if err != nil {
		log.Fatalw("snapshot export failed", "error", err)
	}

	log.Infow("snapshot exported", "folder", folder, "dir", cfg.LocalSnapshotsDir)
}
