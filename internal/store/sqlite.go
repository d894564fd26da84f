package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"database/sql"

	_ "modernc.org/sqlite"
)

const (
	defaultSQLitePath = "blackjack_runs.db"
	defaultListLimit  = 50
)

type SQLiteService struct {
	db *sql.DB
}

func NewSQLiteServiceFromEnv() (*SQLiteService, error) {
	path := strings.TrimSpace(os.Getenv("STORE_DB_PATH"))
	if path == "" {
		path = defaultSQLitePath
	}
	return NewSQLiteService(path)
}

func NewSQLiteService(dbPath string) (*SQLiteService, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSQLiteSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteService{db: db}, nil
}

func (s *SQLiteService) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteService) SaveRun(ctx context.Context, rec RunRecord) error {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := s.db.ExecContext(ctx, `
INSERT INTO runs (
    created_at_ms, strategy, params, sessions, total_rounds,
    avg_roi, house_edge, ev_per_round, risk_of_ruin, success_rate
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		created.UnixMilli(), rec.Strategy, rec.Params, rec.Sessions, rec.TotalRounds,
		rec.AvgROI, rec.HouseEdge, rec.EVPerRound, rec.RiskOfRuin, rec.SuccessRate)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

func (s *SQLiteService) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rows, err := s.db.QueryContext(ctx, `
SELECT id, created_at_ms, strategy, params, sessions, total_rounds,
       avg_roi, house_edge, ev_per_round, risk_of_ruin, success_rate
FROM runs
ORDER BY id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var createdMs int64
		if err := rows.Scan(
			&rec.ID, &createdMs, &rec.Strategy, &rec.Params, &rec.Sessions, &rec.TotalRounds,
			&rec.AvgROI, &rec.HouseEdge, &rec.EVPerRound, &rec.RiskOfRuin, &rec.SuccessRate,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.CreatedAt = time.UnixMilli(createdMs).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func ensureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at_ms INTEGER NOT NULL,
    strategy TEXT NOT NULL,
    params TEXT NOT NULL DEFAULT '',
    sessions INTEGER NOT NULL,
    total_rounds INTEGER NOT NULL,
    avg_roi REAL NOT NULL,
    house_edge REAL NOT NULL,
    ev_per_round REAL NOT NULL,
    risk_of_ruin REAL NOT NULL,
    success_rate REAL NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at_ms)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_strategy ON runs(strategy)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure runs schema: %w", err)
		}
	}
	return nil
}
