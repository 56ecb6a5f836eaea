package config

import (
	"os"
	"testing"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	for _, k := range []string{"APP_ENV", "PORT", "CATALOG_PATH", "CATALOG_SOURCE", "DB_PATH", "LOG_MODE"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != defaultPort || cfg.CatalogPath != defaultCatalogPath || cfg.CatalogSource != CatalogSourceFile {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.IsDev() {
		t.Fatalf("expected dev environment by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_SOURCE", "SQLite")
	t.Setenv("CATALOG_PATH", "/data/materials.xlsx")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.CatalogSource != CatalogSourceSQLite || cfg.CatalogPath != "/data/materials.xlsx" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.IsDev() {
		t.Fatalf("production should not be dev")
	}
}

func TestLoad_RejectsUnknownCatalogSource(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CATALOG_SOURCE", "s3")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown catalog source")
	}
}
