package snapshot

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Badger is the primary snapshot backend, storing each logical key as a
// Badger key/value pair.
type Badger struct {
	db     *badger.DB
	logger *slog.Logger
}

// OpenBadger opens (or creates) a Badger-backed snapshot store at path.
func OpenBadger(path string, logger *slog.Logger) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Sync writes to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("snapshot database opened", "backend", "badger", "path", path)
	}

	return &Badger{db: db, logger: logger}, nil
}

// Load reads all five keys in one read transaction. Absent or unparsable
// keys degrade to their empty defaults; degradation is logged and never
// blocks startup.
func (b *Badger) Load(ctx context.Context) (*Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := Empty()
	err := b.db.View(func(txn *badger.Txn) error {
		loadKey(txn, KeyCompanies, &data.Companies, b.logger)
		loadKey(txn, KeyBoards, &data.Boards, b.logger)
		loadKey(txn, KeyFeedbacks, &data.Feedbacks, b.logger)
		loadKey(txn, KeyComments, &data.Comments, b.logger)
		loadKey(txn, KeyUser, &data.User, b.logger)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return data, nil
}

// loadKey unmarshals one key into dest, leaving dest untouched when the key
// is absent or its value cannot be parsed.
func loadKey(txn *badger.Txn, key string, dest any, logger *slog.Logger) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return
	}
	if err != nil {
		logDegraded(logger, key, err)
		return
	}

	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, dest)
	})
	if err != nil {
		logDegraded(logger, key, err)
	}
}

func logDegraded(logger *slog.Logger, key string, err error) {
	if logger != nil {
		logger.Warn("snapshot key unreadable, using empty default", "key", key, "error", err)
	}
}

// Save writes the four collections and writes-or-removes the user key in a
// single write transaction.
func (b *Badger) Save(ctx context.Context, data *Data) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return b.db.Update(func(txn *badger.Txn) error {
		if err := saveKey(txn, KeyCompanies, data.Companies); err != nil {
			return err
		}
		if err := saveKey(txn, KeyBoards, data.Boards); err != nil {
			return err
		}
		if err := saveKey(txn, KeyFeedbacks, data.Feedbacks); err != nil {
			return err
		}
		if err := saveKey(txn, KeyComments, data.Comments); err != nil {
			return err
		}

		if data.User == nil {
			if err := txn.Delete([]byte(KeyUser)); err != nil {
				return fmt.Errorf("failed to delete key %s: %w", KeyUser, err)
			}
			return nil
		}
		return saveKey(txn, KeyUser, data.User)
	})
}

func saveKey(txn *badger.Txn, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal key %s: %w", key, err)
	}
	if err := txn.Set([]byte(key), raw); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Close gracefully closes the database.
func (b *Badger) Close() error {
	if b.logger != nil {
		b.logger.Info("closing snapshot database")
	}
	return b.db.Close()
}
