package service

import (
	"context"
	"fmt"

	"github.com/dkuleshov/emgtrack/internal/common"
	"github.com/dkuleshov/emgtrack/internal/ident"
	"github.com/dkuleshov/emgtrack/internal/models"
)

// CreateUser registers a new account and returns its redacted view.
// A username or email already present in the store yields
// common.ErrDuplicateAccount; the check is deliberately coarse (one error
// kind for either collision).
func (s *Service) CreateUser(ctx context.Context, username, email, password string) (*models.PublicUser, error) {
	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}
	users, err := s.store.ReadUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username == username || u.Email == email {
			return nil, common.ErrDuplicateAccount
		}
	}

	hash, err := s.digester.Digest(password)
	if err != nil {
		return nil, fmt.Errorf("digesting password: %w", err)
	}

	user := models.User{
		ID:           ident.NewID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.timestamp(),
	}
	users = append(users, user)

	if err := s.store.WriteUsers(ctx, users); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user created", "user_id", user.ID, "username", username)
	return user.Public(), nil
}

// Authenticate verifies the credentials and returns the redacted user.
// An unknown username yields common.ErrUserNotFound, a digest mismatch
// common.ErrInvalidPassword.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.PublicUser, error) {
	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}
	users, err := s.store.ReadUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username != username {
			continue
		}
		if !s.digester.Verify(password, u.PasswordHash) {
			return nil, common.ErrInvalidPassword
		}
		return u.Public(), nil
	}
	return nil, common.ErrUserNotFound
}

// GetUserByID resolves an id to its redacted user, or common.ErrUserNotFound.
func (s *Service) GetUserByID(ctx context.Context, id string) (*models.PublicUser, error) {
	users, err := s.store.ReadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u.Public(), nil
		}
	}
	return nil, common.ErrUserNotFound
}
