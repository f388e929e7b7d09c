package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/me/schedsim/pkg/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and returns
// a Store. Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

func (s *SQLiteStore) CreateRun(ctx context.Context, run *model.Run) error {
	s.logger.Debug("sql", "op", "insert", "table", "runs", "id", run.ID)

	procsJSON, err := json.Marshal(run.Workload.Processes)
	if err != nil {
		return fmt.Errorf("marshal processes: %w", err)
	}
	resultsJSON, err := json.Marshal(run.Results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, name, dispatch_cost, processes, results, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Name, run.Workload.DispatchCost,
		string(procsJSON), string(resultsJSON),
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*model.Run, error) {
	s.logger.Debug("sql", "op", "select", "table", "runs", "id", id)

	var run model.Run
	var procsJSON, resultsJSON, createdAt string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, dispatch_cost, processes, results, created_at
		 FROM runs WHERE id = ?`, id,
	).Scan(&run.ID, &run.Name, &run.Workload.DispatchCost, &procsJSON, &resultsJSON, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(procsJSON), &run.Workload.Processes); err != nil {
		return nil, fmt.Errorf("unmarshal processes: %w", err)
	}
	if err := json.Unmarshal([]byte(resultsJSON), &run.Results); err != nil {
		return nil, fmt.Errorf("unmarshal results: %w", err)
	}
	if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	return &run, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context) ([]model.RunSummary, error) {
	s.logger.Debug("sql", "op", "select", "table", "runs")

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, dispatch_cost, processes, created_at
		 FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []model.RunSummary{}
	for rows.Next() {
		var sum model.RunSummary
		var procsJSON, createdAt string
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.DispatchCost, &procsJSON, &createdAt); err != nil {
			return nil, err
		}
		var procs []model.Process
		if err := json.Unmarshal([]byte(procsJSON), &procs); err != nil {
			return nil, fmt.Errorf("unmarshal processes: %w", err)
		}
		sum.ProcessCount = len(procs)
		if sum.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

func (s *SQLiteStore) DeleteRun(ctx context.Context, id string) error {
	s.logger.Debug("sql", "op", "delete", "table", "runs", "id", id)
	_, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	return err
}
