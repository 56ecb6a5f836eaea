package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultEnv         = "dev"
	defaultPort        = "8080"
	defaultCatalogPath = "./materials.csv"
	defaultDBPath      = "./dev.db"
	defaultLogMode     = "dev"
)

// Catalog sources selectable with CATALOG_SOURCE.
const (
	CatalogSourceFile   = "file"
	CatalogSourceSQLite = "sqlite"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env           string
	Port          string
	CatalogPath   string
	CatalogSource string
	DBPath        string
	LogMode       string
}

// Load reads environment variables and returns a populated Config.
func Load() (Config, error) {
	// Best-effort: a missing .env is fine, real deployments inject the environment.
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Env:           getenv("APP_ENV", defaultEnv),
		Port:          getenv("PORT", defaultPort),
		CatalogPath:   getenv("CATALOG_PATH", defaultCatalogPath),
		CatalogSource: strings.ToLower(getenv("CATALOG_SOURCE", CatalogSourceFile)),
		DBPath:        getenv("DB_PATH", defaultDBPath),
		LogMode:       getenv("LOG_MODE", defaultLogMode),
	}

	switch cfg.CatalogSource {
	case CatalogSourceFile, CatalogSourceSQLite:
	default:
		return Config{}, fmt.Errorf("CATALOG_SOURCE must be %q or %q, got %q", CatalogSourceFile, CatalogSourceSQLite, cfg.CatalogSource)
	}

	return cfg, nil
}

// IsDev reports whether the app runs in a development environment.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.Env) {
	case "", "dev", "development", "local":
		return true
	}
	return false
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
