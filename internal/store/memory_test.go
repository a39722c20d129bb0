package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"africlimate/internal/models"
)

func TestMemoryStoreUsers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	user := models.UserRecord{Email: "ada@example.com", Username: "ada", PasswordHash: "hash"}
	created, err := s.InsertUser(ctx, user)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "insert must assign an ID")

	found, err := s.FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ada", found.Username)

	found, err = s.FindUserByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", found.Email)

	_, err = s.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUniqueness(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.InsertUser(ctx, models.UserRecord{Email: "ada@example.com", Username: "ada"})
	require.NoError(t, err)

	_, err = s.InsertUser(ctx, models.UserRecord{Email: "ada@example.com", Username: "other"})
	assert.ErrorIs(t, err, ErrDuplicateKey, "duplicate email must be rejected")

	_, err = s.InsertUser(ctx, models.UserRecord{Email: "other@example.com", Username: "ada"})
	assert.ErrorIs(t, err, ErrDuplicateKey, "duplicate username must be rejected")
}

func TestMemoryStoreComments(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first, err := s.InsertComment(ctx, models.CommentRecord{ChartTag: "avg_regional_temp", Username: "ada", Comment: "first"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = s.InsertComment(ctx, models.CommentRecord{ChartTag: "emission_map", Username: "ada", Comment: "elsewhere"})
	require.NoError(t, err)

	_, err = s.InsertComment(ctx, models.CommentRecord{ChartTag: "avg_regional_temp", Username: "bob", Comment: "second"})
	require.NoError(t, err)

	list, err := s.ListComments(ctx, "avg_regional_temp")
	require.NoError(t, err)
	require.Len(t, list, 2, "only comments for the requested tag")
	assert.Equal(t, "first", list[0].Comment, "insertion order preserved")
	assert.Equal(t, "second", list[1].Comment)

	empty, err := s.ListComments(ctx, "no_such_chart")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
