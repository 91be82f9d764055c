package service

import "context"

// Session persistence is best-effort by contract: a failing session slot must
// never break sign-in/out, so these methods log failures instead of raising
// them. A session that could not be saved simply will not survive a restart.

// SaveSession records userID as the current session.
func (s *Service) SaveSession(ctx context.Context, userID string) {
	if err := s.sessions.Save(ctx, userID); err != nil {
		s.log.Error(ctx, "failed to save session", "user_id", userID, "error", err)
	}
}

// GetSession returns the saved session user id, or "" when absent or
// unreadable.
func (s *Service) GetSession(ctx context.Context) string {
	userID, err := s.sessions.Get(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read session", "error", err)
		return ""
	}
	return userID
}

// ClearSession removes the saved session.
func (s *Service) ClearSession(ctx context.Context) {
	if err := s.sessions.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear session", "error", err)
	}
}
