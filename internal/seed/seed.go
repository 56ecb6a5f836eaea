// Package seed imports a catalog file into the materials table.
package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Karel2025colab/BTP-room-estimator/internal/catalog"
	"github.com/Karel2025colab/BTP-room-estimator/internal/store"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
	Deletes int
}

// Run makes the materials table mirror cat in one transaction. Running it
// again with the same catalog changes nothing.
func Run(ctx context.Context, db *sql.DB, cat *catalog.Catalog) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	res, err := store.SaveCatalog(ctx, tx, cat)
	if err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return Stats{Inserts: res.Inserted, Updates: res.Updated, Deletes: res.Deleted}, nil
}
