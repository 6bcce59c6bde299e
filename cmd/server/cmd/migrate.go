package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"eventsapi/config"
	"eventsapi/internal/repository/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending PostgreSQL schema migrations",
	Long: `Apply the embedded schema migrations to DATABASE_URL.
MongoDB needs no schema, so this is a no-op when STORAGE_DRIVER=mongo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.StorageDriver != config.StoragePostgres {
			logger.Info("storage driver has no schema migrations", "storage", cfg.StorageDriver)
			return nil
		}
		if err := postgres.Migrate(cfg.PostgresURL); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
		return nil
	},
}
