package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"africlimate/internal/models"
)

// MemoryStore is a map-backed Store used by tests and local mode. The
// mutex serializes the uniqueness check and insert, giving it the same
// atomicity guarantee the Mongo indexes provide.
type MemoryStore struct {
	mu         sync.RWMutex
	byEmail    map[string]models.UserRecord
	byUsername map[string]models.UserRecord
	comments   []models.CommentRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byEmail:    make(map[string]models.UserRecord),
		byUsername: make(map[string]models.UserRecord),
	}
}

// InsertUser stores a new user record, rejecting duplicate email or username.
func (s *MemoryStore) InsertUser(ctx context.Context, user models.UserRecord) (models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return models.UserRecord{}, fmt.Errorf("insert user %s: %w", user.Email, ErrDuplicateKey)
	}
	if _, exists := s.byUsername[user.Username]; exists {
		return models.UserRecord{}, fmt.Errorf("insert user %s: %w", user.Username, ErrDuplicateKey)
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	s.byEmail[user.Email] = user
	s.byUsername[user.Username] = user
	return user, nil
}

// FindUserByEmail returns the user with the given email, or ErrNotFound.
func (s *MemoryStore) FindUserByEmail(ctx context.Context, email string) (models.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byEmail[email]
	if !ok {
		return models.UserRecord{}, ErrNotFound
	}
	return user, nil
}

// FindUserByUsername returns the user with the given username, or ErrNotFound.
func (s *MemoryStore) FindUserByUsername(ctx context.Context, username string) (models.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byUsername[username]
	if !ok {
		return models.UserRecord{}, ErrNotFound
	}
	return user, nil
}

// InsertComment appends a comment; the slice preserves insertion order.
func (s *MemoryStore) InsertComment(ctx context.Context, comment models.CommentRecord) (models.CommentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	s.comments = append(s.comments, comment)
	return comment, nil
}

// ListComments returns all comments for a chart tag in insertion order.
func (s *MemoryStore) ListComments(ctx context.Context, chartTag string) ([]models.CommentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.CommentRecord{}
	for _, c := range s.comments {
		if c.ChartTag == chartTag {
			out = append(out, c)
		}
	}
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}
