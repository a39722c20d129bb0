package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the climate dashboard service
type Config struct {
	// Server configuration
	Port        string `env:"PORT,default=8980"`
	Environment string `env:"ENVIRONMENT,default=local"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`

	// Dataset locations
	TempDataPath string `env:"TEMP_DATA_PATH,default=data/Africa_Avg_Temperature_1960-2013.csv"`
	CO2DataPath  string `env:"CO2_DATA_PATH,default=data/Africa_CO2_Emissions_1960-2018.csv"`

	// Optional remote dataset sources; when set, the CSVs are downloaded
	// to the local paths before loading
	TempDataURL string `env:"TEMP_DATA_URL"`
	CO2DataURL  string `env:"CO2_DATA_URL"`

	// Document store configuration (optional for local testing; when
	// MongoURL is empty the in-memory store is used)
	MongoURL           string `env:"MONGO_URL"`
	MongoDatabase      string `env:"MONGO_DATABASE,default=africlimate"`
	UsersCollection    string `env:"USERS_COLLECTION,default=users"`
	CommentsCollection string `env:"COMMENTS_COLLECTION,default=comments"`

	// Session configuration
	SessionTTL time.Duration `env:"SESSION_TTL,default=12h"`

	// Snapshot storage configuration
	LocalSnapshotsDir string `env:"LOCAL_SNAPSHOTS_DIR,default=./snapshots"`
	GCSBucket         string `env:"GCS_BUCKET"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
