// Package auth holds the in-memory signed-in state for the boundary layer:
// an explicit state machine fed by the facade, passed to whoever renders the
// UI, instead of ambient global session lookups.
package auth

import (
	"context"
	"sync"

	"github.com/dkuleshov/emgtrack/internal/common"
	"github.com/dkuleshov/emgtrack/internal/logging"
	"github.com/dkuleshov/emgtrack/internal/models"
	"github.com/dkuleshov/emgtrack/internal/service"
)

// State is the manager's lifecycle position: Loading until Restore has run,
// then either SignedIn or SignedOut.
type State int

const (
	StateLoading State = iota
	StateSignedOut
	StateSignedIn
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSignedIn:
		return "signed-in"
	default:
		return "signed-out"
	}
}

// Manager tracks the current user across sign-in/sign-up/sign-out.
//
// SignIn and SignUp re-raise facade errors and leave the state unchanged on
// failure. SignOut always reaches SignedOut; errors on the way are logged
// and swallowed so the user is never stuck signed in.
type Manager struct {
	svc *service.Service
	log logging.Logger

	mu    sync.Mutex
	state State
	user  *models.PublicUser
}

func NewManager(svc *service.Service, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop{}
	}
	return &Manager{svc: svc, log: log, state: StateLoading}
}

// Restore initializes the store and resolves any persisted session to a
// user. Any failure along the way lands in SignedOut; a session pointing at
// a user that no longer exists is cleared so it cannot dangle.
func (m *Manager) Restore(ctx context.Context) {
	if err := m.svc.Initialize(ctx); err != nil {
		m.log.Error(ctx, "store initialization failed", "error", err)
		m.set(StateSignedOut, nil)
		return
	}

	userID := m.svc.GetSession(ctx)
	if userID == "" {
		m.set(StateSignedOut, nil)
		return
	}

	user, err := m.svc.GetUserByID(ctx, userID)
	if err != nil {
		m.log.Warn(ctx, "session does not resolve to a user, signing out", "user_id", userID, "error", err)
		m.svc.ClearSession(ctx)
		m.set(StateSignedOut, nil)
		return
	}
	m.set(StateSignedIn, user)
}

// SignUp creates the account, saves the session and signs the user in.
func (m *Manager) SignUp(ctx context.Context, username, email, password string) (*models.PublicUser, error) {
	user, err := m.svc.CreateUser(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	m.svc.SaveSession(ctx, user.ID)
	m.set(StateSignedIn, user)
	return user, nil
}

// SignIn authenticates and signs the user in.
func (m *Manager) SignIn(ctx context.Context, username, password string) (*models.PublicUser, error) {
	user, err := m.svc.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	m.svc.SaveSession(ctx, user.ID)
	m.set(StateSignedIn, user)
	return user, nil
}

// SignOut clears the session and always transitions to SignedOut.
func (m *Manager) SignOut(ctx context.Context) {
	m.svc.ClearSession(ctx)
	m.set(StateSignedOut, nil)
}

// CurrentUser returns the signed-in user, or common.ErrNotSignedIn.
func (m *Manager) CurrentUser() (*models.PublicUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateSignedIn || m.user == nil {
		return nil, common.ErrNotSignedIn
	}
	return m.user, nil
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) IsSignedIn() bool {
	return m.State() == StateSignedIn
}

func (m *Manager) set(state State, user *models.PublicUser) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.user = user
}
