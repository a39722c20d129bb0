// Package comments implements the per-chart comment feature: registered
// users attach free-text notes to a chart tag, everyone can read them.
package comments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"africlimate/internal/auth"
	"africlimate/internal/models"
	"africlimate/internal/store"
)

var (
	// ErrNotAuthenticated indicates the caller has no valid session.
	// Recoverable: the UI prompts for a fresh login.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrEmptyComment indicates a blank comment body.
	ErrEmptyComment = errors.New("comment text is required")
)

// Service adds and lists comments on behalf of authenticated users.
type Service struct {
	store    store.Store
	sessions *auth.Sessions
	clock    clockwork.Clock
}

// NewService creates a comment service.
func NewService(st store.Store, sessions *auth.Sessions, clock clockwork.Clock) *Service {
	return &Service{store: st, sessions: sessions, clock: clock}
}

// Add stores a comment on a chart for the user behind the session token.
// Fails with ErrNotAuthenticated when the token is missing or expired.
func (s *Service) Add(ctx context.Context, token, chartTag, text string) (models.CommentRecord, error) {
	session, ok := s.sessions.Lookup(token)
	if !ok {
		return models.CommentRecord{}, ErrNotAuthenticated
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return models.CommentRecord{}, ErrEmptyComment
	}

	comment := models.CommentRecord{
		ChartTag:  chartTag,
		Username:  session.Username,
		Comment:   text,
		CreatedAt: s.clock.Now().UTC(),
	}

	created, err := s.store.InsertComment(ctx, comment)
	if err != nil {
		return models.CommentRecord{}, fmt.Errorf("store comment: %w", err)
	}
	return created, nil
}

// List returns all comments for a chart tag in submission order. A chart
// without comments yields an empty slice.
func (s *Service) List(ctx context.Context, chartTag string) ([]models.CommentRecord, error) {
	comments, err := s.store.ListComments(ctx, chartTag)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
