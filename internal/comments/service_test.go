package comments

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"africlimate/internal/auth"
	"africlimate/internal/models"
	"africlimate/internal/store"
)

func newTestSetup(t *testing.T) (*Service, *auth.Sessions) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	sessions := auth.NewSessions(12*time.Hour, clock)
	return NewService(store.NewMemoryStore(), sessions, clock), sessions
}

func issueSession(sessions *auth.Sessions, username string) models.Session {
	return sessions.Issue(models.UserRecord{Username: username, Email: username + "@example.com"})
}

func TestAddRequiresSession(t *testing.T) {
	svc, _ := newTestSetup(t)

	_, err := svc.Add(context.Background(), "", "avg_regional_temp", "interesting")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = svc.Add(context.Background(), "bogus-token", "avg_regional_temp", "interesting")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestAddRejectsBlankText(t *testing.T) {
	svc, sessions := newTestSetup(t)
	session := issueSession(sessions, "ada")

	_, err := svc.Add(context.Background(), session.Token, "avg_regional_temp", "   \n ")
	assert.ErrorIs(t, err, ErrEmptyComment)
}

func TestAddAndList(t *testing.T) {
	svc, sessions := newTestSetup(t)
	ctx := context.Background()
	ada := issueSession(sessions, "ada")
	bob := issueSession(sessions, "bob")

	first, err := svc.Add(ctx, ada.Token, "avg_regional_temp", "  warming trend is clear  ")
	require.NoError(t, err)
	assert.Equal(t, "warming trend is clear", first.Comment, "text is trimmed")
	assert.Equal(t, "ada", first.Username, "author comes from the session, not the request")

	_, err = svc.Add(ctx, bob.Token, "avg_regional_temp", "agreed")
	require.NoError(t, err)

	_, err = svc.Add(ctx, ada.Token, "emission_map", "different chart")
	require.NoError(t, err)

	list, err := svc.List(ctx, "avg_regional_temp")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "warming trend is clear", list[0].Comment, "submission order preserved")
	assert.Equal(t, "agreed", list[1].Comment)
}

func TestListWithoutComments(t *testing.T) {
	svc, _ := newTestSetup(t)

	list, err := svc.List(context.Background(), "regional_temp_contribution")
	require.NoError(t, err)
	assert.Empty(t, list, "a chart without comments is not an error")
}
