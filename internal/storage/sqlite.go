package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"lifedash/internal/store"

	_ "modernc.org/sqlite"
)

// DocumentKey is the fixed storage key the whole document lives under.
// Existing exports use the same name, so it must not change.
const DocumentKey = "appData"

// SQLiteMedium persists the document as a single row in a key-value
// table. The row is overwritten atomically on every write.
type SQLiteMedium struct {
	db *sql.DB
}

func NewSQLiteMedium(dbPath string) (*SQLiteMedium, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteMedium{db: db}, nil
}

func (m *SQLiteMedium) Read(ctx context.Context) ([]byte, error) {
	var body []byte
	err := m.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE key = ?`, DocumentKey,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select document: %w", err)
	}
	return body, nil
}

func (m *SQLiteMedium) Write(ctx context.Context, body []byte) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO documents (key, body, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		DocumentKey, body, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}

	slog.InfoContext(ctx, "Document saved to SQLite",
		"key", DocumentKey,
		"bytes", len(body))
	return nil
}

func (m *SQLiteMedium) Close() error {
	return m.db.Close()
}
