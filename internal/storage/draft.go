package storage

import (
	"database/sql"
	"fmt"
)

// DraftStore persists draft documents as opaque JSON payloads keyed by name.
type DraftStore struct {
	db *DB
}

// NewDraftStore creates a new DraftStore.
func NewDraftStore(db *DB) *DraftStore {
	return &DraftStore{db: db}
}

// Put writes (or replaces) the payload stored under key.
func (s *DraftStore) Put(key, payload string) error {
	_, err := s.db.conn.Exec(
		`INSERT INTO drafts (key, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		key, payload,
	)
	if err != nil {
		return fmt.Errorf("write draft %q: %w", key, err)
	}
	return nil
}

// Get returns the payload stored under key. The second return value is false
// when no draft exists for the key.
func (s *DraftStore) Get(key string) (string, bool, error) {
	var payload string
	err := s.db.conn.QueryRow(`SELECT payload FROM drafts WHERE key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read draft %q: %w", key, err)
	}
	return payload, true, nil
}

// Delete removes the draft stored under key, if any.
func (s *DraftStore) Delete(key string) error {
	_, err := s.db.conn.Exec(`DELETE FROM drafts WHERE key = ?`, key)
	return err
}
