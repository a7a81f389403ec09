package telemetry

import (
	"context"
	"database/sql"
	"fmt"
)

// Store wraps the PostgreSQL pool.  It is safe for concurrent use; the pool
// is the only shared state and visibility of new rows is left to Postgres.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Insert writes one reading into m's table and returns the stored row,
// including the generated id and server-assigned timestamp.
func Insert[T any](ctx context.Context, s *Store, m *Metric[T], args []any) (T, error) {
	rec, err := m.scan(s.db.QueryRowContext(ctx, m.insertQuery, args...))
	if err != nil {
		var zero T
		return zero, &StorageError{Op: "insert " + m.Table, Err: err}
	}
	return rec, nil
}

// Between returns all rows of m's table with timestamp in [w.Start, w.End],
// ordered by timestamp ascending.  An empty window yields an empty, non-nil
// slice.
func Between[T any](ctx context.Context, s *Store, m *Metric[T], w Window) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, m.rangeQuery, w.Start, w.End)
	if err != nil {
		return nil, &StorageError{Op: "select " + m.Table, Err: err}
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		rec, err := m.scan(rows)
		if err != nil {
			return nil, &StorageError{Op: "scan " + m.Table, Err: err}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "select " + m.Table, Err: err}
	}
	return out, nil
}

// Ingest fans a validated device snapshot out into the metric tables in a
// single transaction.  Food and water are always written; location, heart
// rate and blood oxygen only when the snapshot carries all three.  On any
// failure nothing is committed.
func (s *Store) Ingest(ctx context.Context, snap Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &StorageError{Op: "ingest", Err: fmt.Errorf("begin tx: %w", err)}
	}
	defer tx.Rollback()

	weight, level := *snap.Weight, *snap.WaterLevel

	if _, err := tx.ExecContext(ctx, queryIngestFoodWeight, weight, FoodStatus(weight)); err != nil {
		return &StorageError{Op: "ingest", Err: fmt.Errorf("insert food weight: %w", err)}
	}
	if _, err := tx.ExecContext(ctx, queryIngestWaterLevel, level, WaterStatus(level)); err != nil {
		return &StorageError{Op: "ingest", Err: fmt.Errorf("insert water level: %w", err)}
	}

	if snap.HasVitals() {
		if _, err := tx.ExecContext(ctx, queryIngestRoamingPath, snap.GPS.Lat, snap.GPS.Lng, snap.GPS.Alt); err != nil {
			return &StorageError{Op: "ingest", Err: fmt.Errorf("insert roaming path: %w", err)}
		}
		if _, err := tx.ExecContext(ctx, queryIngestHeartRate, *snap.BPM); err != nil {
			return &StorageError{Op: "ingest", Err: fmt.Errorf("insert heart rate: %w", err)}
		}
		if _, err := tx.ExecContext(ctx, queryIngestBloodOxygen, *snap.SpO2); err != nil {
			return &StorageError{Op: "ingest", Err: fmt.Errorf("insert blood oxygen: %w", err)}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "ingest", Err: fmt.Errorf("commit: %w", err)}
	}
	return nil
}
