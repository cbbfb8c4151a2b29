// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/cybertoys/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timestampLayout keeps a fixed-width fraction so stored timestamps sort as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// PrivateKeyKey is the key under which the last generated RSA private key is kept.
const PrivateKeyKey = "rsa_private_key"

// Store wraps SQLite access for key-value settings and operation history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS operations (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			tool TEXT NOT NULL,
			action TEXT NOT NULL,
			input TEXT NOT NULL,
			output TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_operations_created_at ON operations(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_operations_tool ON operations(tool);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value stored under key and whether it exists.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(timestampLayout))
	return err
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

// RecordOperation appends an operation to the history.
func (s *Store) RecordOperation(ctx context.Context, op model.Operation) (int64, error) {
	if op.CreatedAt.IsZero() {
		op.CreatedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO operations (created_at, tool, action, input, output)
		 VALUES (?, ?, ?, ?, ?)`,
		op.CreatedAt.UTC().Format(timestampLayout),
		op.Tool,
		op.Action,
		op.Input,
		op.Output,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListOperations returns operations matching filter, oldest first.
func (s *Store) ListOperations(ctx context.Context, filter model.HistoryFilter) ([]model.Operation, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Tool != "" {
		clauses = append(clauses, "tool = ?")
		args = append(args, filter.Tool)
	}
	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(timestampLayout))
	}
	query := fmt.Sprintf(`SELECT id, created_at, tool, action, input, output
		FROM operations
		WHERE %s
		ORDER BY created_at DESC, id DESC`, strings.Join(clauses, " AND "))
	if filter.Last > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Last)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var ops []model.Operation
	for rows.Next() {
		var op model.Operation
		var createdAt string
		if err := rows.Scan(&op.ID, &createdAt, &op.Tool, &op.Action, &op.Input, &op.Output); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		op.CreatedAt = parsed
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
	return ops, nil
}
