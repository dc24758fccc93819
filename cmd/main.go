package main

import (
	"context"
	"log/slog"
	"os"

	"products-backend/api"
	"products-backend/config"
	"products-backend/service"
	"products-backend/store"
)

func main() {
	ctx := context.Background()

	// Getting the config
	cfg := config.New()

	// Database initialization
	db, err := store.New(ctx, cfg.Dsn(), store.Options{CacheTTL: cfg.CacheTTL()})
	if err != nil {
		slog.Error("Database initialization failed", "error", err)
		panic(err)
	}
	defer db.Close()

	// Services with the cache-stats logging decorator
	statsLogger := service.NewCacheStatsLogger(db.CacheStats, cfg.CacheStatsEnabled(), os.Stdout)
	stores := service.NewStoreService(db.Stores(), statsLogger)
	products := service.NewProductService(db.Products(), stores, statsLogger)

	// Running the server
	a, err := api.New(stores, products)
	if err != nil {
		slog.Error("Api initialization failed", "error", err)
		panic(err)
	}
	a.Run(cfg.ServerPort())
}
