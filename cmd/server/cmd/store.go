package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"eventsapi/config"
	"eventsapi/internal/domain"
	"eventsapi/internal/repository/mongodb"
	"eventsapi/internal/repository/postgres"
)

const appName = "events-api"

// openStore connects the configured backend and returns its repository and
// a function releasing the connection.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.EventRepository, func(context.Context) error, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		if err := postgres.Migrate(cfg.PostgresURL); err != nil {
			return nil, nil, err
		}
		db, err := postgres.Open(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to postgres")
		return postgres.NewEventRepository(db), func(context.Context) error { return db.Close() }, nil
	case config.StorageMongo:
		client, err := mongodb.Connect(ctx, cfg.Mongo.ConnectionURI(), appName)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to mongo", "database", cfg.Mongo.Database)
		return mongodb.NewEventRepository(client.Database(cfg.Mongo.Database)), client.Disconnect, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, config.NewLogger(os.Stdout, cfg.Environment, cfg.LogLevel), nil
}
