// Package common defines shared constants and sentinel errors used across
// the emgtrack core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Account/domain errors surfaced to the boundary layer.
	ErrDuplicateAccount = errors.New("username or email already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidPassword  = errors.New("incorrect password")

	// ErrStorageWrite marks a failed persistence write. Write paths wrap it so
	// callers can distinguish "failed to save" from domain validation errors.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrNotSignedIn is returned by boundary operations that require an
	// authenticated user.
	ErrNotSignedIn = errors.New("not signed in")
)
