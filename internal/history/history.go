// Package history journals delivery runs and their outcomes in SQLite.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/vmunix/postarr/internal/outcome"
)

//go:embed schema.sql
var Schema string

// Run is one journaled delivery run.
type Run struct {
	ID         string
	Source     string // record file or "-" for stdin
	Sink       string
	StartedAt  time.Time
	FinishedAt *time.Time
	Processed  int
	Updated    int
}

// Entry is one journaled outcome.
type Entry struct {
	ID        int64
	RunID     string
	Status    outcome.Status
	Message   string
	Library   string
	Title     string
	CreatedAt time.Time
}

// Store provides access to the run journal.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database. The schema must already be applied.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens (creating if needed) the journal at path and applies the
// schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	// Concurrent runs share the store; SQLite takes one writer at a time.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return NewStore(db), nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// StartRun records the start of a run and returns it with a fresh ID.
func (s *Store) StartRun(ctx context.Context, source, sink string) (*Run, error) {
	r := &Run{
		ID:        uuid.NewString(),
		Source:    source,
		Sink:      sink,
		StartedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source, sink, started_at)
		VALUES (?, ?, ?, ?)`,
		r.ID, r.Source, r.Sink, r.StartedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", mapSQLiteError(err))
	}
	return r, nil
}

// AddOutcome journals one outcome of a run.
func (s *Store) AddOutcome(ctx context.Context, runID string, o outcome.Outcome) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO outcomes (run_id, status, message, library, title, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		runID, o.Status, o.Message, o.Library, o.Title, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert outcome: %w", mapSQLiteError(err))
	}
	return nil
}

// FinishRun stores the final counts of a run.
// Returns ErrNotFound if the run does not exist.
func (s *Store) FinishRun(ctx context.Context, runID string, summary *outcome.Summary) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE runs SET finished_at = ?, processed = ?, updated = ?
		WHERE id = ?`,
		time.Now().UTC(), summary.Processed, summary.Updated, runID,
	)
	if err != nil {
		return fmt.Errorf("finish run %s: %w", runID, mapSQLiteError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run %s: %w", runID, err)
	}
	if n == 0 {
		return fmt.Errorf("finish run %s: %w", runID, ErrNotFound)
	}
	return nil
}

// ListRuns returns the most recent runs first. A non-positive limit
// returns every run.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, source, sink, started_at, finished_at, processed, updated
		FROM runs ORDER BY started_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var (
			r        Run
			finished sql.NullTime
		)
		if err := rows.Scan(&r.ID, &r.Source, &r.Sink, &r.StartedAt, &finished, &r.Processed, &r.Updated); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if finished.Valid {
			t := finished.Time
			r.FinishedAt = &t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Outcomes returns the journaled outcomes of a run in insertion order.
func (s *Store) Outcomes(ctx context.Context, runID string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, status, message, library, title, created_at
		FROM outcomes WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("list outcomes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.RunID, &e.Status, &e.Message, &e.Library, &e.Title, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
