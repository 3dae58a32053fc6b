package snapshot

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"sync"
)

// Memory is an in-memory snapshot store. It round-trips values through JSON
// so it exercises the same serialization path as the durable backends,
// which makes it the backend of choice for tests and throwaway sessions.
type Memory struct {
	mu   sync.Mutex
	keys map[string][]byte
}

// NewMemory creates an empty in-memory snapshot store.
func NewMemory() *Memory {
	return &Memory{keys: make(map[string][]byte)}
}

// Load reads the current snapshot. Unparsable keys degrade to empty
// defaults, matching the durable backends.
func (m *Memory) Load(ctx context.Context) (*Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	data := Empty()
	m.loadKey(KeyCompanies, &data.Companies)
	m.loadKey(KeyBoards, &data.Boards)
	m.loadKey(KeyFeedbacks, &data.Feedbacks)
	m.loadKey(KeyComments, &data.Comments)
	m.loadKey(KeyUser, &data.User)
	return data, nil
}

func (m *Memory) loadKey(key string, dest any) {
	raw, ok := m.keys[key]
	if !ok {
		return
	}
	// Parse failures leave dest at its empty default.
	_ = json.Unmarshal(raw, dest)
}

// Save replaces the stored snapshot.
func (m *Memory) Save(ctx context.Context, data *Data) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.saveKey(KeyCompanies, data.Companies); err != nil {
		return err
	}
	if err := m.saveKey(KeyBoards, data.Boards); err != nil {
		return err
	}
	if err := m.saveKey(KeyFeedbacks, data.Feedbacks); err != nil {
		return err
	}
	if err := m.saveKey(KeyComments, data.Comments); err != nil {
		return err
	}

	if data.User == nil {
		delete(m.keys, KeyUser)
		return nil
	}
	return m.saveKey(KeyUser, data.User)
}

func (m *Memory) saveKey(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal key %s: %w", key, err)
	}
	m.keys[key] = raw
	return nil
}

// SetRaw overwrites a key with raw bytes. Tests use this to simulate
// corrupted persisted data.
func (m *Memory) SetRaw(key string, raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[key] = append([]byte(nil), raw...)
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
