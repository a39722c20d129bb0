package reports

import (
	"context"
	"strings"
	"testing"
	"time"

	"africlimate/internal/charts"
	"africlimate/internal/dataset"
	"africlimate/internal/logger"
	"africlimate/internal/models"
	"africlimate/internal/storage"
	"africlimate/internal/views"
)

const snapshotTempCSV = `Country,Region,1960,1961
Algeria,Northern Africa,22.0,22.4
Kenya,Eastern Africa,25.0,25.1
`

const snapshotEmissionCSV = `Country,Region,1960,1961
Algeria,Northern Africa,4.0,4.2
Kenya,Eastern Africa,1.5,1.6
`

func TestSnapshotExport(t *testing.T) {
	ctx := context.Background()

	tempTable, err := dataset.ParseSeriesTable(strings.NewReader(snapshotTempCSV), models.MetricTemperature)
	if err != nil {
		t.Fatalf("parse temperature csv: %v", err)
	}
	emissionTable, err := dataset.ParseSeriesTable(strings.NewReader(snapshotEmissionCSV), models.MetricEmission)
	if err != nil {
		t.Fatalf("parse emission csv: %v", err)
	}
	data := dataset.NewDataContext(tempTable, emissionTable)

	client, err := storage.NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalClient failed: %v", err)
	}

	snapshotter := NewSnapshotter(data, charts.NewChartGenerator(), NewPageBuilder(), client, logger.NewNop())

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	folder, err := snapshotter.Export(ctx, now)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if folder != storage.SnapshotFolderPath(now) {
		t.Errorf("Unexpected snapshot folder: %s", folder)
	}

	page, err := client.GetFile(ctx, folder+"/index.html")
	if err != nil {
		t.Fatalf("Snapshot page missing: %v", err)
	}
	if !strings.Contains(string(page), "Temperature and CO2 Emission Trends in Africa") {
		t.Error("Snapshot page is missing the dashboard title")
	}

	// Every chart that rendered also gets a static PNG next to the page.
	for _, kind := range views.AllKinds {
		if _, err := client.GetFile(ctx, folder+"/"+string(kind)+".png"); err != nil {
			t.Errorf("Snapshot PNG for %s missing: %v", kind, err)
		}
	}

	listed, err := client.ListSnapshots(ctx, 10)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(listed) != 1 || listed[0] != folder {
		t.Errorf("Expected the exported snapshot to be listed, got %v", listed)
	}
}
