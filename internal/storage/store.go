// Package storage implements the record store: two logical collections
// (users, readings) persisted as whole JSON documents behind an
// initialize/read/write contract. Two backends exist, a plain-file store and
// a SQLite key-value store, selected once at construction.
//
// Reads are lenient by default: a missing, unreadable or corrupted document
// reads as an empty collection (logged, not raised), so a damaged local file
// degrades the view instead of crashing the caller. Writes always surface
// their errors, wrapped with common.ErrStorageWrite. Strict reads can be
// enabled per store for callers that prefer hard failures.
package storage

import (
	"context"

	"github.com/dkuleshov/emgtrack/internal/logging"
	"github.com/dkuleshov/emgtrack/internal/models"
)

// Store is the durable record store behind the facade.
//
// Init is idempotent and never clobbers existing collections. Read methods
// return collections in persisted insertion order. Write methods replace the
// whole collection; there are no partial updates and no atomicity across the
// two collections.
type Store interface {
	Init(ctx context.Context) error
	ReadUsers(ctx context.Context) ([]models.User, error)
	WriteUsers(ctx context.Context, users []models.User) error
	ReadReadings(ctx context.Context) ([]models.Reading, error)
	WriteReadings(ctx context.Context, readings []models.Reading) error
}

// usersDocument and readingsDocument are the persisted wire shapes.
type usersDocument struct {
	Users []models.User `json:"users"`
}

type readingsDocument struct {
	Data []models.Reading `json:"data"`
}

type options struct {
	strictReads bool
	log         logging.Logger
}

// Option configures a store backend at construction time.
type Option func(*options)

// WithStrictReads makes read failures surface as errors instead of empty
// collections.
func WithStrictReads() Option {
	return func(o *options) { o.strictReads = true }
}

// WithLogger sets the logger used for recovered read failures.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

func newOptions(opts []Option) options {
	o := options{log: logging.Nop{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
