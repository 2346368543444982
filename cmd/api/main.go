package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "dachshund-registry/internal/adapters/storage/postgres"
	"dachshund-registry/internal/config"
	"dachshund-registry/internal/platform/logger"
	"dachshund-registry/internal/platform/metrics"
	"dachshund-registry/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{App: "dachshund-registry"}).
			Error("configuración inválida", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "dachshund-registry",
	})

	// El handle al store se abre una vez acá y se inyecta; sin DSN
	// corremos con el adapter in-memory (modo dev).
	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("no se pudo abrir Postgres", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = pg.Bootstrap(ctx, db)
		cancel()
		if err != nil {
			log.Error("bootstrap de schema falló", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}

	h, err := router.New(router.Options{
		Log:     log,
		DB:      db,
		Metrics: metrics.New(),
	})
	if err != nil {
		log.Error("no se pudo armar el router", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("servidor escuchando", map[string]any{"addr": cfg.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("servidor cayó", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("apagando servidor", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown falló", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
