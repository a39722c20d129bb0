package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"africlimate/internal/models"
)

// Sessions is an in-memory session registry keyed by opaque token.
// Sessions expire after a fixed TTL; expired entries are dropped lazily on
// lookup.
type Sessions struct {
	mu     sync.RWMutex
	ttl    time.Duration
	clock  clockwork.Clock
	active map[string]models.Session
}

// NewSessions creates a session registry with the given TTL.
func NewSessions(ttl time.Duration, clock clockwork.Clock) *Sessions {
	return &Sessions{
		ttl:    ttl,
		clock:  clock,
		active: make(map[string]models.Session),
	}
}

// Issue creates a session for a user and returns it.
func (s *Sessions) Issue(user models.UserRecord) models.Session {
	session := models.Session{
		Token:     uuid.NewString(),
		Username:  user.Username,
		Email:     user.Email,
		ExpiresAt: s.clock.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.active[session.Token] = session
	s.mu.Unlock()
	return session
}

// Lookup resolves a token to its session. Returns false for unknown or
// expired tokens.
func (s *Sessions) Lookup(token string) (models.Session, bool) {
	s.mu.RLock()
	session, ok := s.active[token]
	s.mu.RUnlock()
	if !ok {
		return models.Session{}, false
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.active, token)
		s.mu.Unlock()
		return models.Session{}, false
	}
	return session, true
}

// Revoke removes a session, e.g. on logout.
func (s *Sessions) Revoke(token string) {
	s.mu.Lock()
	delete(s.active, token)
	s.mu.Unlock()
}
