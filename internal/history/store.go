// Package history keeps a local log of successful generations so past
// documents can be listed from the TUI or the history subcommand.
package history

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS generations (
	id             TEXT PRIMARY KEY,
	created_at     TIMESTAMP NOT NULL,
	title          TEXT NOT NULL,
	question_count INTEGER NOT NULL,
	solution_count INTEGER NOT NULL,
	output_path    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_generations_created_at ON generations (created_at);
`

// Entry is one recorded generation.
type Entry struct {
	ID         string    `db:"id"`
	CreatedAt  time.Time `db:"created_at"`
	Title      string    `db:"title"`
	Questions  int       `db:"question_count"`
	Solutions  int       `db:"solution_count"`
	OutputPath string    `db:"output_path"`
}

// Store is the SQLite-backed generation log.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at dsn, applies pragmas, and
// creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a generation entry. A missing ID or timestamp is
// filled in.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	const q = `INSERT INTO generations
		(id, created_at, title, question_count, solution_count, output_path)
		VALUES (:id, :created_at, :title, :question_count, :solution_count, :output_path)`
	if _, err := s.db.NamedExecContext(ctx, q, e); err != nil {
		return fmt.Errorf("record generation: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []Entry
	const q = `SELECT id, created_at, title, question_count, solution_count, output_path
		FROM generations ORDER BY created_at DESC, id LIMIT ?`
	if err := s.db.SelectContext(ctx, &entries, q, limit); err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	return entries, nil
}

// applyPragmas configures SQLite for single-user, single-writer use.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultPath resolves the database file path in priority order:
// 1. QUIZDOC_DB environment variable
// 2. $XDG_DATA_HOME/quizdoc/quizdoc.db
// 3. ~/.local/share/quizdoc/quizdoc.db
func DefaultPath() (string, error) {
	if p := os.Getenv("QUIZDOC_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "quizdoc", "quizdoc.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
