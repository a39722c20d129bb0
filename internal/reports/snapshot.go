package reports

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"africlimate/internal/charts"
	"africlimate/internal/dataset"
	"africlimate/internal/storage"
	"africlimate/internal/views"
)

// Snapshotter exports a static copy of the dashboard (index.html plus one
// PNG per chart) to the configured storage backend.
type Snapshotter struct {
	data      *dataset.DataContext
	generator *charts.ChartGenerator
	builder   *PageBuilder
	storage   storage.Client
	log       *zap.SugaredLogger
}

// NewSnapshotter creates a snapshot exporter.
func NewSnapshotter(data *dataset.DataContext, generator *charts.ChartGenerator, builder *PageBuilder, store storage.Client, log *zap.SugaredLogger) *Snapshotter {
	return &Snapshotter{
		data:      data,
		generator: generator,
		builder:   builder,
		storage:   store,
		log:       log,
	}
}

// Export renders every chart with no filter applied and stores the result
// under a timestamped snapshot folder. It returns the folder path. A chart
// that fails to render is exported as an inline error section; only a
// storage failure aborts the export.
func (s *Snapshotter) Export(ctx context.Context, now time.Time) (string, error) {
	folder := storage.SnapshotFolderPath(now)

	sections := make([]ChartSection, 0, len(views.AllKinds))
	for _, kind := range views.AllKinds {
		view, err := views.Select(s.data, kind, views.Filter{})
		if err != nil {
			s.log.Warnw("snapshot: view selection failed", "kind", kind, "error", err)
			sections = append(sections, s.builder.ErrorSection(kind, "No data available for this chart."))
			continue
		}

		snippet, err := s.generator.BuildSnippet(view)
		if err != nil {
			s.log.Warnw("snapshot: chart rendering failed", "kind", kind, "error", err)
			sections = append(sections, s.builder.ErrorSection(kind, "Chart rendering failed."))
			continue
		}
		sections = append(sections, s.builder.Section(snippet, nil))

		png, err := s.generator.RenderPNG(view)
		if err != nil {
			s.log.Warnw("snapshot: png rendering failed", "kind", kind, "error", err)
			continue
		}
		pngPath := fmt.Sprintf("%s/%s.png", folder, kind)
		if err := s.storage.StoreFile(ctx, pngPath, png); err != nil {
			return "", fmt.Errorf("store %s: %w", pngPath, err)
		}
	}

	page, err := s.builder.BuildPage(PageData{
		Title:    DashboardTitle,
		Regions:  s.data.Regions(),
		Sections: sections,
	})
	if err != nil {
		return "", fmt.Errorf("build snapshot page: %w", err)
	}

	indexPath := folder + "/index.html"
	if err := s.storage.StoreFile(ctx, indexPath, []byte(page)); err != nil {
		return "", fmt.Errorf("store %s: %w", indexPath, err)
	}

	s.log.Infow("snapshot exported", "folder", folder, "charts", len(sections))
	return folder, nil
}
