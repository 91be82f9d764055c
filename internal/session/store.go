// Package session persists the single "currently signed-in user id" slot.
// Two backends exist: a secure slot that stores a signed token in the local
// database, and a plain key-value fallback mirroring the record store's
// fallback layout. At most one session value exists per install; a new save
// overwrites the previous one.
package session

import "context"

// Store is the session slot. Get returns "" when no session is saved;
// unusable values (tampered, expired) also read as absent rather than as
// errors, so a damaged slot can only ever sign the user out.
type Store interface {
	Save(ctx context.Context, userID string) error
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
