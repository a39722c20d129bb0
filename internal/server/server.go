// Package server exposes the dashboard over HTTP: the rendered page, the
// JSON view API, registration, login, comments and snapshot management.
package server

import (
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"africlimate/internal/auth"
	"africlimate/internal/charts"
	"africlimate/internal/comments"
	"africlimate/internal/config"
	"africlimate/internal/dataset"
	"africlimate/internal/observability"
	"africlimate/internal/reports"
	"africlimate/internal/storage"
	"africlimate/internal/store"
)

// Server is the main application server.
type Server struct {
	Config    *config.Config
	Data      *dataset.DataContext
	Generator *charts.ChartGenerator
	Pages     *reports.PageBuilder
	Auth      *auth.Service
	Sessions  *auth.Sessions
	Comments  *comments.Service
	Snapshots *reports.Snapshotter
	Storage   storage.Client
	Metrics   *observability.Metrics
	Log       *zap.SugaredLogger
}

// NewServer wires the application components on top of the loaded dataset,
// document store and snapshot storage client.
func NewServer(cfg *config.Config, data *dataset.DataContext, st store.Store, storageClient storage.Client, metrics *observability.Metrics, log *zap.SugaredLogger) *Server {
	clock := clockwork.NewRealClock()
	sessions := auth.NewSessions(cfg.SessionTTL, clock)
	generator := charts.NewChartGenerator()
	pages := reports.NewPageBuilder()

	return &Server{
		Config:    cfg,
		Data:      data,
		Generator: generator,
		Pages:     pages,
		Auth:      auth.NewService(st, sessions, clock),
		Sessions:  sessions,
		Comments:  comments.NewService(st, sessions, clock),
		Snapshots: reports.NewSnapshotter(data, generator, pages, storageClient, log),
		Storage:   storageClient,
		Metrics:   metrics,
		Log:       log,
	}
}

// SetupRoutes configures HTTP routes for the server.
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Specific API routes first
	mux.HandleFunc("/health", s.HandleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/api/views/", s.HandleView)
	mux.HandleFunc("/api/register", s.HandleRegister)
	mux.HandleFunc("/api/login", s.HandleLogin)
	mux.HandleFunc("/api/comments", s.HandleComments)
	mux.HandleFunc("/snapshots", s.HandleSnapshots)
	mux.HandleFunc("/snapshots/", s.HandleSnapshotFile)

	// Root path last (catch-all)
	mux.HandleFunc("/", s.HandleDashboard)

	return mux
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}
