// Package storage persists generated assessment reports.
//
// It uses SQLite keyed by report id. The scoring core never touches this
// package; persistence is a collaborator concern owned by the HTTP layer.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"mosaic/internal/report"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// ErrNotFound indicates no report exists for the requested id.
var ErrNotFound = errors.New("report not found")

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id          TEXT PRIMARY KEY,
	email       TEXT NOT NULL,
	archetype   TEXT NOT NULL,
	payload     TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_email ON reports(email);
`

// Store is a SQLite-backed report store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at path and bootstraps the
// schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrapping schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists a report. Saving an existing id replaces it.
func (s *Store) Save(ctx context.Context, rep *report.Report) error {
	payload, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO reports (id, email, archetype, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
		rep.ID, rep.Profile.Email, rep.Archetype.Key, string(payload), rep.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// Get loads the report with the given id.
func (s *Store) Get(ctx context.Context, id string) (*report.Report, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM reports WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query report: %w", err)
	}

	var rep report.Report
	if err := json.Unmarshal([]byte(payload), &rep); err != nil {
		return nil, fmt.Errorf("unmarshal report %s: %w", id, err)
	}
	return &rep, nil
}

// Summary is a compact listing entry for one stored report.
type Summary struct {
	ID        string    `json:"id"`
	Archetype string    `json:"archetype"`
	CreatedAt time.Time `json:"created_at"`
}

// ListByEmail returns summaries of all reports stored for an email,
// newest first.
func (s *Store) ListByEmail(ctx context.Context, email string) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, archetype, created_at FROM reports WHERE email = ? ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, fmt.Errorf("query reports for %s: %w", email, err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []Summary
	for rows.Next() {
		var s Summary
		var created string
		if err := rows.Scan(&s.ID, &s.Archetype, &created); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for report %s: %w", s.ID, err)
		}
		s.CreatedAt = ts
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
