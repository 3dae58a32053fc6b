// Package sqlite provides a SQLite-backed snapshot store, interchangeable
// with the Badger backend.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/feedbackboardapp/feedback-board/internal/snapshot"
)

//go:embed schema.sql
var schemaSQL string

// Store persists snapshots in a single key/value table.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates a new SQLite snapshot store at the given path.
// It configures WAL mode, sets pragmas, and runs schema migrations.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Single logical writer; a small pool is plenty.
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec schema: %w", err)
	}

	if logger != nil {
		logger.Info("snapshot database opened", "backend", "sqlite", "path", path)
	}

	return &Store{db: db, logger: logger}, nil
}

// Load reads all five keys. Absent or unparsable keys degrade to their
// empty defaults without blocking the rest of the load.
func (s *Store) Load(ctx context.Context) (*snapshot.Data, error) {
	data := snapshot.Empty()
	s.loadKey(ctx, snapshot.KeyCompanies, &data.Companies)
	s.loadKey(ctx, snapshot.KeyBoards, &data.Boards)
	s.loadKey(ctx, snapshot.KeyFeedbacks, &data.Feedbacks)
	s.loadKey(ctx, snapshot.KeyComments, &data.Comments)
	s.loadKey(ctx, snapshot.KeyUser, &data.User)
	return data, nil
}

func (s *Store) loadKey(ctx context.Context, key string, dest any) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM snapshots WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return
	}
	if err == nil {
		err = json.Unmarshal(raw, dest)
	}
	if err != nil && s.logger != nil {
		s.logger.Warn("snapshot key unreadable, using empty default", "key", key, "error", err)
	}
}

// Save rewrites all five keys in one transaction.
func (s *Store) Save(ctx context.Context, data *snapshot.Data) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	if err := saveKey(ctx, tx, snapshot.KeyCompanies, data.Companies); err != nil {
		return err
	}
	if err := saveKey(ctx, tx, snapshot.KeyBoards, data.Boards); err != nil {
		return err
	}
	if err := saveKey(ctx, tx, snapshot.KeyFeedbacks, data.Feedbacks); err != nil {
		return err
	}
	if err := saveKey(ctx, tx, snapshot.KeyComments, data.Comments); err != nil {
		return err
	}

	if data.User == nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM snapshots WHERE key = ?", snapshot.KeyUser); err != nil {
			return fmt.Errorf("delete key %s: %w", snapshot.KeyUser, err)
		}
	} else if err := saveKey(ctx, tx, snapshot.KeyUser, data.User); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot tx: %w", err)
	}
	return nil
}

func saveKey(ctx context.Context, tx *sql.Tx, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal key %s: %w", key, err)
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO snapshots (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, raw)
	if err != nil {
		return fmt.Errorf("upsert key %s: %w", key, err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("closing snapshot database")
	}
	return s.db.Close()
}
