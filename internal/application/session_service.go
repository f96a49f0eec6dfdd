package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/todoflow/todoflow/internal/domain"
)

// SessionService tracks the logged-in user. Logging out removes both the
// session record and the user's task namespace.
type SessionService struct {
	sessions domain.SessionRepository
	store    *StoreService
}

func NewSessionService(sessions domain.SessionRepository, store *StoreService) *SessionService {
	return &SessionService{
		sessions: sessions,
		store:    store,
	}
}

func (s *SessionService) Login(ctx context.Context, user domain.User) error {
	if strings.TrimSpace(user.ID) == "" {
		return errors.New("user id is required")
	}
	if !user.Provider.Valid() {
		return fmt.Errorf("unknown auth provider %q", string(user.Provider))
	}
	return s.sessions.SaveUser(ctx, user)
}

// Current returns the persisted session user, or domain.ErrSessionNotFound.
func (s *SessionService) Current(ctx context.Context) (domain.User, error) {
	return s.sessions.CurrentUser(ctx)
}

// Logout clears the session and purges the user's tasks. Logging out with
// no active session is a no-op.
func (s *SessionService) Logout(ctx context.Context) error {
	user, err := s.sessions.CurrentUser(ctx)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.store.Purge(ctx, user.ID); err != nil {
		return fmt.Errorf("purge tasks for %s: %w", user.ID, err)
	}
	return s.sessions.ClearUser(ctx)
}
