// Package service implements the facade between boundary code (the CLI) and
// the record/session stores: account management, reading management and the
// best-effort session operations.
package service

import (
	"context"
	"time"

	"github.com/dkuleshov/emgtrack/internal/digest"
	"github.com/dkuleshov/emgtrack/internal/logging"
	"github.com/dkuleshov/emgtrack/internal/session"
	"github.com/dkuleshov/emgtrack/internal/storage"
)

// Service is the facade over the record store and the session slot.
//
// Operations that read a collection call Init first, so callers never have to
// sequence initialization themselves. Domain errors and write failures
// propagate; session persistence is best-effort (logged, never raised).
type Service struct {
	store    storage.Store
	sessions session.Store
	digester digest.Digester
	log      logging.Logger

	now func() time.Time
}

func New(store storage.Store, sessions session.Store, digester digest.Digester, log logging.Logger) *Service {
	if log == nil {
		log = logging.Nop{}
	}
	return &Service{
		store:    store,
		sessions: sessions,
		digester: digester,
		log:      log,
		now:      time.Now,
	}
}

// Initialize makes sure the underlying store exists. Idempotent; an already
// populated store is left untouched.
func (s *Service) Initialize(ctx context.Context) error {
	return s.store.Init(ctx)
}

// timestamp renders the current time in the persisted ISO-8601 form.
func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}
