package main

import (
	"log/slog"

	"monitoring/config"
	"monitoring/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func runMigrate(cfg *config.Config, logger *slog.Logger) error {
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is required")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	if err := postgres.Migrate(db); err != nil {
		return err
	}

	logger.Info("Schema migrated")

	return nil
}
