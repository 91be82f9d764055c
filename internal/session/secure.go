package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dkuleshov/emgtrack/internal/logging"
)

// sessionKey is the single entry the secure slot occupies.
const sessionKey = "userId"

// SecureStore keeps the session as a signed token in the secrets table of
// the local database. The signature ties the slot to this install's secret:
// a value edited by hand or copied from another install reads as absent.
type SecureStore struct {
	db       *sql.DB
	secret   []byte
	validity time.Duration
	log      logging.Logger
}

func NewSecureStore(db *sql.DB, secret []byte, validity time.Duration, log logging.Logger) *SecureStore {
	if log == nil {
		log = logging.Nop{}
	}
	return &SecureStore{db: db, secret: secret, validity: validity, log: log}
}

func (s *SecureStore) Save(ctx context.Context, userID string) error {
	token, err := generateToken(userID, s.secret, s.validity)
	if err != nil {
		return fmt.Errorf("signing session: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO secrets (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, sessionKey, token)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (s *SecureStore) Get(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM secrets WHERE key = ?`, sessionKey).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}

	userID, err := userIDFromToken(token, s.secret)
	if err != nil {
		// tampered or expired: treat as signed out
		s.log.Warn(ctx, "discarding unusable session token", "error", err)
		return "", nil
	}
	return userID, nil
}

func (s *SecureStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM secrets WHERE key = ?`, sessionKey)
	if err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
