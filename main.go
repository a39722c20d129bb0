package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"africlimate/internal/config"
	"africlimate/internal/dataset"
	"africlimate/internal/fetchers"
	"africlimate/internal/logger"
	"africlimate/internal/observability"
	"africlimate/internal/server"
	"africlimate/internal/storage"
	"africlimate/internal/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger itself is configured from the config, so this one
		// failure has nowhere better to go than stderr.
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err.Error())
	}
	defer log.Sync()

	log.Infow("starting africlimate dashboard",
		"port", cfg.Port,
		"environment", cfg.Environment)

	// Download remote datasets when configured; otherwise the loader uses
	// whatever sits at the local paths.
	fetcher := fetchers.NewDatasetFetcher(log)
	if err := fetcher.FetchAll(ctx, []fetchers.Source{
		{URL: cfg.TempDataURL, Dest: cfg.TempDataPath},
		{URL: cfg.CO2DataURL, Dest: cfg.CO2DataPath},
	}); err != nil {
		log.Fatalw("dataset fetch failed", "error", err)
	}

	// The dashboard is useless without its datasets; refuse to start.
	data, err := dataset.Load(cfg.TempDataPath, cfg.CO2DataPath)
	if err != nil {
		log.Fatalw("failed to load datasets", "error", err)
	}
	log.Infow("datasets loaded",
		"temperature_rows", len(data.Temperature.Rows),
		"emission_rows", len(data.Emission.Rows),
		"regions", data.Regions())

	st := newStore(ctx, cfg, log)
	defer st.Close(ctx)

	mode := storage.DeploymentLocal
	if cfg.Environment != "local" {
		mode = storage.DeploymentGCS
	}
	storageClient, err := storage.NewClient(ctx, mode, cfg)
	if err != nil {
		log.Fatalw("failed to initialize snapshot storage", "error", err)
	}

	metrics := observability.NewMetrics()
	srv := server.NewServer(cfg, data, st, storageClient, metrics, log)
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // snapshot export renders every chart
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalw("http server error", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server shutdown error", "error", err)
	}

	log.Info("server stopped")
}

// newStore connects to MongoDB when configured and falls back to the
// in-memory store for local runs without one. Accounts and comments in
// the in-memory store do not survive a restart.
func newStore(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) store.Store {
	if cfg.MongoURL == "" {
		log.Warn("MONGO_URL not set - using in-memory store, accounts and comments will not persist")
		return store.NewMemoryStore()
	}

	mongoStore, err := store.NewMongoStore(ctx, cfg.MongoURL, cfg.MongoDatabase, cfg.UsersCollection, cfg.CommentsCollection)
	if err != nil {
		log.Fatalw("failed to connect to MongoDB", "error", err)
	}
	log.Infow("connected to MongoDB", "database", cfg.MongoDatabase)
	return mongoStore
}
