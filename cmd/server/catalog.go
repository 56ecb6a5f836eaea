package main

import (
	"context"
	"fmt"

	"github.com/Karel2025colab/BTP-room-estimator/internal/catalog"
	"github.com/Karel2025colab/BTP-room-estimator/internal/config"
	"github.com/Karel2025colab/BTP-room-estimator/internal/db"
	"github.com/Karel2025colab/BTP-room-estimator/internal/logger"
	"github.com/Karel2025colab/BTP-room-estimator/internal/migrations"
	"github.com/Karel2025colab/BTP-room-estimator/internal/seed"
	"github.com/Karel2025colab/BTP-room-estimator/internal/store"
)

// loadCatalog runs once at startup. With the sqlite source the catalog file
// is imported first, then the table is read back so the database stays the
// single source the server estimates from.
func loadCatalog(ctx context.Context, cfg config.Config, log *logger.Logger) (*catalog.Catalog, error) {
	fileCatalog, err := catalog.Load(cfg.CatalogPath)
	if cfg.CatalogSource == config.CatalogSourceFile {
		return fileCatalog, err
	}

	database, dbErr := db.Open(ctx, cfg.DBPath)
	if dbErr != nil {
		return nil, dbErr
	}
	defer database.Close()

	if err := migrations.Up(ctx, database); err != nil {
		return nil, err
	}

	switch {
	case err == nil:
		stats, err := seed.Run(ctx, database, fileCatalog)
		if err != nil {
			return nil, fmt.Errorf("seed materials: %w", err)
		}
		log.Info("catalog imported", "path", cfg.CatalogPath, "inserts", stats.Inserts, "updates", stats.Updates, "deletes", stats.Deletes)
	case cfg.IsDev():
		return nil, err
	default:
		// Production may run without the file and rely on the imported table.
		log.Warn("catalog file not imported", "path", cfg.CatalogPath, "error", err)
	}

	return store.LoadCatalog(ctx, database)
}
