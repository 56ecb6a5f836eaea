package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Karel2025colab/BTP-room-estimator/internal/catalog"
	"github.com/Karel2025colab/BTP-room-estimator/internal/config"
	"github.com/Karel2025colab/BTP-room-estimator/internal/logger"
)

type server struct {
	catalog *catalog.Catalog
	log     *logger.Logger
	now     func() time.Time
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to load material catalog", "source", cfg.CatalogSource, "path", cfg.CatalogPath, "error", err)
	}
	log.Info("material catalog loaded", "source", cfg.CatalogSource, "materials", cat.Len())

	srv := &server{catalog: cat, log: log, now: time.Now}
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	log.Info("listening", "addr", httpServer.Addr, "env", cfg.Env)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server stopped", "error", err)
	}
}
