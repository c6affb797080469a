package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/luquetti/mis18/internal/shared"
)

// Store persists named collections as serialized JSON documents.
type Store struct {
	db  *sql.DB
	bus *Bus
}

// New creates a Store over an open database connection. The bus may be
// shared with other components; if nil, a private one is created.
func New(db *sql.DB, bus *Bus) *Store {
	if bus == nil {
		bus = NewBus()
	}
	return &Store{db: db, bus: bus}
}

// Bus returns the change-notification bus backing this store.
func (s *Store) Bus() *Bus {
	return s.bus
}

// LoadRaw returns the serialized document under key, writing and returning
// seed if no document exists yet. The seed is written at most once per key
// for the lifetime of the database: an existing row is returned as-is even
// when its value is an empty document.
func (s *Store) LoadRaw(key string, seed []byte) ([]byte, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction for %s: %v", shared.ErrStorage, key, err)
	}
	defer tx.Rollback()

	var value []byte
	err = tx.QueryRow("SELECT value FROM collections WHERE key = ?", key).Scan(&value)
	if err == nil {
		return value, tx.Commit()
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("%w: failed to read %s: %v", shared.ErrStorage, key, err)
	}

	if _, err := tx.Exec("INSERT INTO collections (key, value) VALUES (?, ?)", key, seed); err != nil {
		return nil, fmt.Errorf("%w: failed to seed %s: %v", shared.ErrStorage, key, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit seed for %s: %v", shared.ErrStorage, key, err)
	}

	return seed, nil
}

// SaveRaw persists the serialized document under key, then synchronously
// publishes a change event for the key. There is no acknowledgement and no
// retry; a persistence failure is returned to the caller and nothing is
// published for it.
func (s *Store) SaveRaw(key string, value []byte) error {
	query := `
		INSERT INTO collections (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("%w: failed to persist %s: %v", shared.ErrStorage, key, err)
	}

	s.bus.Publish(key)
	return nil
}

// Remove deletes the document under key, if any, and publishes a change
// event. Used for the session entry on logout; collections themselves are
// never structurally deleted.
func (s *Store) Remove(key string) error {
	if _, err := s.db.Exec("DELETE FROM collections WHERE key = ?", key); err != nil {
		return fmt.Errorf("%w: failed to remove %s: %v", shared.ErrStorage, key, err)
	}

	s.bus.Publish(key)
	return nil
}

// Load reads the typed document under key, seeding it on first access.
func Load[T any](s *Store, key string, seed T) (T, error) {
	var zero T

	seedRaw, err := json.Marshal(seed)
	if err != nil {
		return zero, fmt.Errorf("%w: failed to serialize seed for %s: %v", shared.ErrStorage, key, err)
	}

	raw, err := s.LoadRaw(key, seedRaw)
	if err != nil {
		return zero, err
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return zero, fmt.Errorf("%w: failed to deserialize %s: %v", shared.ErrStorage, key, err)
	}

	return value, nil
}

// Save writes the typed document under key and broadcasts the change.
func Save[T any](s *Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: failed to serialize %s: %v", shared.ErrStorage, key, err)
	}

	return s.SaveRaw(key, raw)
}
