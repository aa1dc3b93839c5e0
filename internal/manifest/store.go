// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest persists a run manifest: one row per PDF artifact
// exhibitkit writes, with enough provenance to reconstruct what was
// generated, from which sources, and when.
package manifest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/psiino/exhibitkit/pkg/types"
)

// Store manages the manifest SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the manifest database at path, creating the
// schema and any missing parent directories.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating manifest directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening manifest database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating manifest schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS exhibits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			kind TEXT NOT NULL,
			label TEXT,
			orientation TEXT,
			source_path TEXT,
			output_path TEXT NOT NULL,
			pages INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_exhibits_kind ON exhibits(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_exhibits_label ON exhibits(label)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends one entry. A zero CreatedAt is stamped with the current
// time.
func (s *Store) Record(ctx context.Context, rec types.ExhibitRecord) error {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exhibits (created_at, kind, label, orientation, source_path, output_path, pages)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		created.UTC().Format(time.RFC3339),
		string(rec.Kind),
		rec.Label,
		string(rec.Orientation),
		rec.SourcePath,
		rec.OutputPath,
		rec.Pages,
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", rec.OutputPath, err)
	}
	return nil
}

// List returns entries in insertion order, optionally filtered by kind
// (empty kind returns everything).
func (s *Store) List(ctx context.Context, kind types.ArtifactKind) ([]types.ExhibitRecord, error) {
	query := `SELECT id, created_at, kind, label, orientation, source_path, output_path, pages
	          FROM exhibits`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying manifest: %w", err)
	}
	defer rows.Close()

	var records []types.ExhibitRecord
	for rows.Next() {
		var rec types.ExhibitRecord
		var created, recKind, orientation string
		if err := rows.Scan(&rec.ID, &created, &recKind, &rec.Label, &orientation,
			&rec.SourcePath, &rec.OutputPath, &rec.Pages); err != nil {
			return nil, fmt.Errorf("scanning manifest row: %w", err)
		}
		rec.Kind = types.ArtifactKind(recKind)
		rec.Orientation = types.Orientation(orientation)
		if t, parseErr := time.Parse(time.RFC3339, created); parseErr == nil {
			rec.CreatedAt = t
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest rows: %w", err)
	}
	return records, nil
}
