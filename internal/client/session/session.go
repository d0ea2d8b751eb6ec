// Package session owns the authenticated context of the client: the token
// and identity issued at login, persisted durably so a restart does not
// force a re-login. Every component that needs credentials consumes the
// Service by reference; nothing else touches the storage directly.
package session

import (
	"context"

	"github.com/mribeiro/bibliocli/internal/client/models"
	"github.com/mribeiro/bibliocli/internal/logging"
)

// Session is the authenticated context created by a successful login and
// destroyed on logout. The token is opaque to the client.
type Session struct {
	Token  string
	UserID int64
	Nome   string
	Role   string
}

// IsLibrarian reports whether the session's role unlocks librarian
// commands. This is a UX hint only: the backend makes the real call on
// every request.
func (s Session) IsLibrarian() bool {
	return s.Role == models.RoleLibrarian
}

// Store is durable key-value storage for at most one session.
type Store interface {
	// Get returns the persisted session, or nil when none is stored.
	Get(ctx context.Context) (*Session, error)
	Set(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

// Service is the single injected session owner. It caches the current
// session in memory and keeps the Store in sync on every change.
type Service struct {
	store   Store
	log     logging.Logger
	current *Session
}

func NewService(store Store, log logging.Logger) *Service {
	return &Service{store: store, log: log}
}

// Load restores a persisted session at process start. A missing session is
// not an error; the client simply starts logged out.
func (s *Service) Load(ctx context.Context) error {
	saved, err := s.store.Get(ctx)
	if err != nil {
		return err
	}
	s.current = saved
	if saved != nil {
		s.log.Info(ctx, "session restored", "user", saved.Nome, "role", saved.Role)
	}
	return nil
}

// Current returns the active session, or nil when logged out.
func (s *Service) Current() *Session {
	return s.current
}

func (s *Service) IsLoggedIn() bool {
	return s.current != nil
}

// Token implements the token source consumed by the API client. Empty
// when logged out.
func (s *Service) Token() string {
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Set installs a new session and persists it.
func (s *Service) Set(ctx context.Context, sess Session) error {
	if err := s.store.Set(ctx, sess); err != nil {
		return err
	}
	s.current = &sess
	return nil
}

// Clear wipes every piece of persisted state. Requests issued afterwards
// carry no Authorization header.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.current = nil
	return nil
}
