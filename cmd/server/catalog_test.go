package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Karel2025colab/BTP-room-estimator/internal/config"
	"github.com/Karel2025colab/BTP-room-estimator/internal/logger"
)

const testCatalogCSV = `material,coverage_sqft,waste_factor,unit_cost_usd,labor_cost_per_unit
Drywall Sheet 4x8,32,0.10,12.00,8.00
Joint Compound,450,0.05,15.50,2.00
`

func writeCatalog(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "materials.csv")
	if err := os.WriteFile(path, []byte(testCatalogCSV), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadCatalog_File(t *testing.T) {
	cfg := config.Config{CatalogSource: config.CatalogSourceFile, CatalogPath: writeCatalog(t, t.TempDir())}

	cat, err := loadCatalog(context.Background(), cfg, logger.Nop())
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cat.Len())
	}
}

func TestLoadCatalog_SQLiteImportsThenReadsBack(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		Env:           "production",
		CatalogSource: config.CatalogSourceSQLite,
		CatalogPath:   writeCatalog(t, dir),
		DBPath:        filepath.Join(dir, "estimator.db"),
	}

	cat, err := loadCatalog(context.Background(), cfg, logger.Nop())
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if cat.Len() != 2 || cat.At(1).Name != "Joint Compound" {
		t.Fatalf("unexpected catalog: %+v", cat.Materials())
	}

	// Without the file, production keeps serving the imported table.
	if err := os.Remove(cfg.CatalogPath); err != nil {
		t.Fatalf("remove catalog: %v", err)
	}
	cat, err = loadCatalog(context.Background(), cfg, logger.Nop())
	if err != nil {
		t.Fatalf("loadCatalog without file: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cat.Len())
	}

	cfg.Env = "dev"
	if _, err := loadCatalog(context.Background(), cfg, logger.Nop()); err == nil {
		t.Fatalf("expected dev to fail when the catalog file is missing")
	}
}

func TestLoadCatalog_MissingFileFails(t *testing.T) {
	cfg := config.Config{CatalogSource: config.CatalogSourceFile, CatalogPath: filepath.Join(t.TempDir(), "none.csv")}
	if _, err := loadCatalog(context.Background(), cfg, logger.Nop()); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
}
