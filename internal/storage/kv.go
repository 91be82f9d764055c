package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dkuleshov/emgtrack/internal/common"
	"github.com/dkuleshov/emgtrack/internal/models"
)

// Keys under which the key-value backend stores the two documents. The
// shapes are identical to the file backend's documents.
const (
	usersKey    = "emg_users"
	readingsKey = "emg_data"
)

// KVStore keeps both collections as JSON blobs in the kv table of a local
// SQLite database. It is the fallback backend for installs without a private
// file area of their own.
type KVStore struct {
	db   *sql.DB
	opts options
}

func NewKVStore(db *sql.DB, opts ...Option) *KVStore {
	return &KVStore{db: db, opts: newOptions(opts)}
}

// Init seeds empty documents for both keys. Existing rows are kept as-is.
func (s *KVStore) Init(ctx context.Context) error {
	for key, doc := range map[string]any{
		usersKey:    usersDocument{Users: []models.User{}},
		readingsKey: readingsDocument{Data: []models.Reading{}},
	} {
		b, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("%w: encoding %s: %v", common.ErrStorageWrite, key, err)
		}
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO kv (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO NOTHING
		`, key, b)
		if err != nil {
			return fmt.Errorf("%w: seeding %s: %v", common.ErrStorageWrite, key, err)
		}
	}
	return nil
}

func (s *KVStore) ReadUsers(ctx context.Context) ([]models.User, error) {
	var doc usersDocument
	if err := s.readDocument(ctx, usersKey, &doc); err != nil {
		return nil, err
	}
	return doc.Users, nil
}

func (s *KVStore) WriteUsers(ctx context.Context, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	return s.writeDocument(ctx, usersKey, usersDocument{Users: users})
}

func (s *KVStore) ReadReadings(ctx context.Context) ([]models.Reading, error) {
	var doc readingsDocument
	if err := s.readDocument(ctx, readingsKey, &doc); err != nil {
		return nil, err
	}
	return doc.Data, nil
}

func (s *KVStore) WriteReadings(ctx context.Context, readings []models.Reading) error {
	if readings == nil {
		readings = []models.Reading{}
	}
	return s.writeDocument(ctx, readingsKey, readingsDocument{Data: readings})
}

func (s *KVStore) readDocument(ctx context.Context, key string, out any) error {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err == nil {
		err = json.Unmarshal(value, out)
	}
	if err == nil {
		return nil
	}
	if s.opts.strictReads {
		return fmt.Errorf("reading kv[%s]: %w", key, err)
	}
	s.opts.log.Warn(ctx, "document unreadable, treating collection as empty",
		"key", key, "error", err)
	return nil
}

func (s *KVStore) writeDocument(ctx context.Context, key string, doc any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", common.ErrStorageWrite, key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, b)
	if err != nil {
		return fmt.Errorf("%w: writing %s: %v", common.ErrStorageWrite, key, err)
	}
	return nil
}
