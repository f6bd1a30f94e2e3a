// Package history records env generation runs in the local SQLite database.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"fleetworks/fleetenv/internal/database"

	"github.com/google/uuid"
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ErrNotFound is returned by Get when no run matches.
var ErrNotFound = errors.New("history: run not found")

// Repository defines the persistence interface for generation runs.
type Repository interface {
	Save(run *Run) error
	Get(id string) (*Run, error)
	List(limit int) ([]Run, error)
	Prune(olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the history repository at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	const ddl = `
        CREATE TABLE IF NOT EXISTS generation_runs (
            id           TEXT    PRIMARY KEY,
            timestamp    TEXT    NOT NULL,
            output_dir   TEXT    NOT NULL DEFAULT '',
            files        TEXT    NOT NULL DEFAULT '',
            backend_url  TEXT    NOT NULL DEFAULT '',
            frontend_url TEXT    NOT NULL DEFAULT '',
            cors_origins TEXT    NOT NULL DEFAULT '',
            key_length   INTEGER NOT NULL DEFAULT 0,
            stored_keys  INTEGER NOT NULL DEFAULT 0,
            outcome      TEXT    NOT NULL DEFAULT '',
            detail       TEXT    NOT NULL DEFAULT '',
            duration_ms  INTEGER NOT NULL DEFAULT 0
        );
        CREATE INDEX IF NOT EXISTS idx_generation_runs_timestamp ON generation_runs(timestamp);
    `
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("history: migration failed: %w", err)
	}
	return nil
}

// Save inserts a run, assigning an ID and timestamp when they are unset.
func (r *SQLiteRepository) Save(run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now().UTC()
	}

	_, err := r.db.Exec(`
        INSERT INTO generation_runs (id, timestamp, output_dir, files, backend_url, frontend_url,
                                     cors_origins, key_length, stored_keys, outcome, detail, duration_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Timestamp.UTC().Format(timeLayout), run.OutputDir, strings.Join(run.Files, "\n"),
		run.BackendURL, run.FrontendURL, run.CORSOrigins, run.KeyLength, run.StoredKeys,
		run.Outcome, run.Detail, run.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("history: insert failed: %w", err)
	}
	return nil
}

const selectColumns = `
        SELECT id, timestamp, output_dir, files, backend_url, frontend_url,
               cors_origins, key_length, stored_keys, outcome, detail, duration_ms
        FROM generation_runs`

// Get returns the run with the given ID. A unique ID prefix is accepted.
func (r *SQLiteRepository) Get(id string) (*Run, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	rows, err := r.db.Query(selectColumns+` WHERE substr(id, 1, length(?)) = ? ORDER BY timestamp DESC LIMIT 2`, id, id)
	if err != nil {
		return nil, fmt.Errorf("history: query failed: %w", err)
	}
	defer rows.Close()

	runs, err := scanRows(rows)
	if err != nil {
		return nil, err
	}
	switch len(runs) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &runs[0], nil
	default:
		return nil, fmt.Errorf("history: run ID prefix %q is ambiguous", id)
	}
}

// List returns the most recent n runs.
func (r *SQLiteRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(selectColumns+` ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Prune deletes runs older than the given duration.
func (r *SQLiteRepository) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(timeLayout)
	result, err := r.db.Exec(`DELETE FROM generation_runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("history: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRows(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var run Run
		var timestampStr, files string
		err := rows.Scan(
			&run.ID, &timestampStr, &run.OutputDir, &files, &run.BackendURL, &run.FrontendURL,
			&run.CORSOrigins, &run.KeyLength, &run.StoredKeys, &run.Outcome, &run.Detail, &run.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("history: scan failed: %w", err)
		}
		run.Timestamp, _ = time.Parse(timeLayout, timestampStr)
		if files != "" {
			run.Files = strings.Split(files, "\n")
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
