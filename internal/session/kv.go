package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// fallbackKey holds the raw session user id in the kv table, alongside the
// record store's fallback documents. No wrapper, no signature.
const fallbackKey = "emg_user_session"

// KVStore is the plain fallback session slot.
type KVStore struct {
	db *sql.DB
}

func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

func (s *KVStore) Save(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, fallbackKey, []byte(userID))
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (s *KVStore) Get(ctx context.Context) (string, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, fallbackKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	return string(value), nil
}

func (s *KVStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, fallbackKey)
	if err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
