// Command verify-db connects to the planning database, ensures the schema
// exists, and reports the row count of each table. Useful as an operational
// smoke check after deployment.
package main

import (
	"context"
	"log"
	"time"

	"stevedore-planner/internal/config"
	"stevedore-planner/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}

	ctx := context.Background()
	pool := connectDB(ctx, cfg.Database.URL)
	defer pool.Close()

	store := core.NewPlanningStore(pool)
	if err := store.CreateSchema(ctx); err != nil {
		log.Fatalf("[SCHEMA] %v", err)
	}
	log.Println("[SCHEMA] vessel and warehouse tables present")

	for _, table := range []string{"vessel", "warehouse"} {
		var count int
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			log.Fatalf("[COUNT] %s: %v", table, err)
		}
		log.Printf("[COUNT] %s: %d rows", table, count)
	}

	log.Println("[DONE] database verified.")
}

func connectDB(ctx context.Context, url string) *pgxpool.Pool {
	connCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		log.Fatalf("[CONNECT] failed to create pool: %v", err)
	}

	if err := pool.Ping(connCtx); err != nil {
		log.Fatalf("[CONNECT] failed to ping database: %v", err)
	}

	log.Println("[CONNECT] success")
	return pool
}
