// internal/persistence/db.go

// Package persistence keeps finished runs in SQLite for the high-score table.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Run is one finished game.
type Run struct {
	ID          string  `db:"id"`
	Score       int     `db:"score"`
	Kills       int     `db:"kills"`
	Deaths      int     `db:"deaths"`
	Seed        int64   `db:"seed"`
	DurationSec float64 `db:"duration_sec"`
	FinishedAt  int64   `db:"finished_at"` // unix seconds
}

// Finished returns FinishedAt as a time.
func (r Run) Finished() time.Time {
	return time.Unix(r.FinishedAt, 0)
}

// DB wraps a SQLite connection.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		score INTEGER NOT NULL,
		kills INTEGER NOT NULL,
		deaths INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		duration_sec REAL NOT NULL,
		finished_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun stores r. An empty ID gets a fresh UUID and a zero FinishedAt gets
// the current time; the stored run is returned.
func (db *DB) SaveRun(r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.FinishedAt == 0 {
		r.FinishedAt = time.Now().Unix()
	}

	_, err := db.conn.NamedExec(`INSERT INTO runs
		(id, score, kills, deaths, seed, duration_sec, finished_at)
		VALUES (:id, :score, :kills, :deaths, :seed, :duration_sec, :finished_at)`, r)
	if err != nil {
		return Run{}, fmt.Errorf("save run %s: %w", r.ID, err)
	}

	slog.Info("run saved", "id", r.ID, "score", r.Score, "kills", r.Kills)
	return r, nil
}

// TopRuns returns the best runs, highest score first. Ties go to the
// earlier run.
func (db *DB) TopRuns(limit int) ([]Run, error) {
	var runs []Run
	err := db.conn.Select(&runs,
		`SELECT id, score, kills, deaths, seed, duration_sec, finished_at
		FROM runs ORDER BY score DESC, finished_at ASC LIMIT ?`,
		limit,
	)
	return runs, err
}

// BestScore returns the highest stored score, or 0 with no runs.
func (db *DB) BestScore() (int, error) {
	var best sql.NullInt64
	if err := db.conn.Get(&best, "SELECT MAX(score) FROM runs"); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return int(best.Int64), nil
}
