package main

import (
	"context"
	"net/http"
	"time"

	webAdapter "stevedore-planner/internal/adapters/web"
	"stevedore-planner/internal/config"
	"stevedore-planner/internal/core"
	"stevedore-planner/internal/db"
	"stevedore-planner/internal/logger"

	"go.uber.org/zap"
)

func main() {
	log := logger.Must(logger.New())
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	store := core.NewPlanningStore(pool)
	if err := store.CreateSchema(ctx); err != nil {
		// Startup is fail-fast: a server that cannot write its two tables
		// has nothing to serve.
		log.Fatal("schema", zap.Error(err))
	}

	svc := core.NewPlanningService(store)
	handler := webAdapter.NewHandler(svc, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}
