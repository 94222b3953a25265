package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PlanningStore persists and retrieves vessel and warehouse entries.
type PlanningStore interface {
	// CreateSchema creates the two tables if they do not exist yet.
	// Safe to call on every process start.
	CreateSchema(ctx context.Context) error
	// InsertEntry writes one vessel row and one warehouse row in a single
	// transaction and returns their assigned ids. Either both rows commit
	// or neither does.
	InsertEntry(ctx context.Context, v VesselRecord, w WarehouseRecord) (vesselID, warehouseID int, err error)
	// ListVessels returns all vessel rows in insertion order (ascending id).
	ListVessels(ctx context.Context) ([]VesselRecord, error)
	// ListWarehouses returns all warehouse rows in insertion order.
	ListWarehouses(ctx context.Context) ([]WarehouseRecord, error)
}

type planningStore struct {
	pool *pgxpool.Pool
}

// NewPlanningStore returns a PlanningStore backed by the given PostgreSQL pool.
func NewPlanningStore(pool *pgxpool.Pool) PlanningStore {
	return &planningStore{pool: pool}
}

func (s *planningStore) CreateSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS vessel (
			id          SERIAL PRIMARY KEY,
			date        DATE NOT NULL,
			vessel_name TEXT NOT NULL,
			cargo       TEXT NOT NULL,
			daily_rate  NUMERIC NOT NULL,
			quantity    NUMERIC NOT NULL,
			client_name TEXT NOT NULL,
			factory     TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS warehouse (
			id        SERIAL PRIMARY KEY,
			client    TEXT NOT NULL,
			factory   TEXT NOT NULL,
			cargo     TEXT NOT NULL,
			quantity2 NUMERIC NOT NULL,
			place     TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create planning schema: %w", err)
	}
	return nil
}

func (s *planningStore) InsertEntry(ctx context.Context, v VesselRecord, w WarehouseRecord) (int, int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var vesselID int
	err = tx.QueryRow(ctx, `
		INSERT INTO vessel (date, vessel_name, cargo, daily_rate, quantity, client_name, factory)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, v.Date, v.VesselName, v.Cargo, v.DailyRate, v.Quantity, v.ClientName, v.Factory).Scan(&vesselID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to insert vessel row: %w", err)
	}

	var warehouseID int
	err = tx.QueryRow(ctx, `
		INSERT INTO warehouse (client, factory, cargo, quantity2, place)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, w.Client, w.Factory, w.Cargo, w.Quantity2, w.Place).Scan(&warehouseID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to insert warehouse row: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to commit submission: %w", err)
	}
	return vesselID, warehouseID, nil
}

func (s *planningStore) ListVessels(ctx context.Context) ([]VesselRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, date, vessel_name, cargo, daily_rate, quantity, client_name, factory
		FROM vessel
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vessels: %w", err)
	}
	defer rows.Close()

	var vessels []VesselRecord
	for rows.Next() {
		var v VesselRecord
		if err := rows.Scan(&v.ID, &v.Date, &v.VesselName, &v.Cargo, &v.DailyRate, &v.Quantity, &v.ClientName, &v.Factory); err != nil {
			return nil, fmt.Errorf("failed to scan vessel row: %w", err)
		}
		vessels = append(vessels, v)
	}
	return vessels, rows.Err()
}

func (s *planningStore) ListWarehouses(ctx context.Context) ([]WarehouseRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, client, factory, cargo, quantity2, place
		FROM warehouse
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []WarehouseRecord
	for rows.Next() {
		var w WarehouseRecord
		if err := rows.Scan(&w.ID, &w.Client, &w.Factory, &w.Cargo, &w.Quantity2, &w.Place); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse row: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}
