// Package store reads the material catalog from SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Karel2025colab/BTP-room-estimator/internal/catalog"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SaveResult counts the rows changed by SaveCatalog. Unchanged rows count as
// neither inserted nor updated.
type SaveResult struct {
	Inserted int
	Updated  int
	Deleted  int
}

// LoadCatalog reads every material ordered by position and validates the
// result the same way a file source is validated.
func LoadCatalog(ctx context.Context, db *sql.DB) (*catalog.Catalog, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name, coverage_sqft, waste_factor, unit_cost_usd, labor_cost_per_unit
		FROM materials
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query materials: %w", err)
	}
	defer rows.Close()

	materials := make([]catalog.Material, 0)
	for rows.Next() {
		var m catalog.Material
		if err := rows.Scan(&m.Name, &m.CoveragePerUnit, &m.WasteFactor, &m.UnitCost, &m.LaborCostPerUnit); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate materials: %w", err)
	}

	cat, err := catalog.New(materials)
	if err != nil {
		var le *catalog.LoadError
		if errors.As(err, &le) {
			le.Source = "sqlite:materials"
		}
		return nil, err
	}
	return cat, nil
}

// SaveCatalog makes the materials table mirror cat: rows are matched by name,
// position follows catalog order, and names missing from cat are deleted.
// Pass a *sql.Tx to apply the changes atomically.
func SaveCatalog(ctx context.Context, q DBTX, cat *catalog.Catalog) (SaveResult, error) {
	var res SaveResult
	keep := make(map[string]bool, cat.Len())

	for i, m := range cat.Materials() {
		keep[m.Name] = true
		if err := upsertMaterial(ctx, q, i, m, &res); err != nil {
			return SaveResult{}, err
		}
	}
	if err := deleteStale(ctx, q, keep, &res); err != nil {
		return SaveResult{}, err
	}
	return res, nil
}

func upsertMaterial(ctx context.Context, q DBTX, position int, m catalog.Material, res *SaveResult) error {
	var (
		id      int64
		current catalog.Material
		pos     int
	)
	err := q.QueryRowContext(ctx, `
		SELECT id, position, coverage_sqft, waste_factor, unit_cost_usd, labor_cost_per_unit
		FROM materials
		WHERE name = ?
	`, m.Name).Scan(&id, &pos, &current.CoveragePerUnit, &current.WasteFactor, &current.UnitCost, &current.LaborCostPerUnit)

	if errors.Is(err, sql.ErrNoRows) {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO materials (position, name, coverage_sqft, waste_factor, unit_cost_usd, labor_cost_per_unit)
			VALUES (?, ?, ?, ?, ?, ?)
		`, position, m.Name, m.CoveragePerUnit, m.WasteFactor, m.UnitCost, m.LaborCostPerUnit); err != nil {
			return fmt.Errorf("insert material %q: %w", m.Name, err)
		}
		res.Inserted++
		return nil
	}
	if err != nil {
		return fmt.Errorf("check material %q: %w", m.Name, err)
	}

	current.Name = m.Name
	if current == m && pos == position {
		return nil
	}

	if _, err := q.ExecContext(ctx, `
		UPDATE materials
		SET
			position = ?,
			coverage_sqft = ?,
			waste_factor = ?,
			unit_cost_usd = ?,
			labor_cost_per_unit = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, position, m.CoveragePerUnit, m.WasteFactor, m.UnitCost, m.LaborCostPerUnit, id); err != nil {
		return fmt.Errorf("update material %q: %w", m.Name, err)
	}
	res.Updated++
	return nil
}

func deleteStale(ctx context.Context, q DBTX, keep map[string]bool, res *SaveResult) error {
	rows, err := q.QueryContext(ctx, `SELECT id, name FROM materials`)
	if err != nil {
		return fmt.Errorf("query materials: %w", err)
	}

	var stale []int64
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			rows.Close()
			return fmt.Errorf("scan material: %w", err)
		}
		if !keep[name] {
			stale = append(stale, id)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterate materials: %w", err)
	}
	rows.Close()

	for _, id := range stale {
		if _, err := q.ExecContext(ctx, `DELETE FROM materials WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete material %d: %w", id, err)
		}
		res.Deleted++
	}
	return nil
}
