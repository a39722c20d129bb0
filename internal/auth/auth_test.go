package auth

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"africlimate/internal/store"
)

func newTestService(t *testing.T) (*Service, *Sessions, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	sessions := NewSessions(12*time.Hour, clock)
	return NewService(store.NewMemoryStore(), sessions, clock), sessions, clock
}

func validRequest() RegisterRequest {
	return RegisterRequest{
		Email:           "ada@example.com",
		Username:        "ada",
		Password:        "secret",
		ConfirmPassword: "secret",
	}
}

func TestRegister(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "ada", user.Username)
	assert.NotEmpty(t, user.ID)

	// The stored hash must verify against the password and never equal it.
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
}

func TestRegisterValidationOrder(t *testing.T) {
	// Every request below is broken in several ways at once; the reported
	// error must always be the first check in the fixed order.
	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr error
	}{
		{
			name: "invalid email wins over everything",
			mutate: func(r *RegisterRequest) {
				r.Email = "not-an-email"
				r.Username = ""
				r.Password = ""
			},
			wantErr: ErrInvalidEmail,
		},
		{
			name: "missing username before password checks",
			mutate: func(r *RegisterRequest) {
				r.Username = "   "
				r.Password = ""
			},
			wantErr: ErrMissingUsername,
		},
		{
			name:    "missing password",
			mutate:  func(r *RegisterRequest) { r.Password = ""; r.ConfirmPassword = "" },
			wantErr: ErrWeakPassword,
		},
		{
			name:    "four characters is too short",
			mutate:  func(r *RegisterRequest) { r.Password = "abcd"; r.ConfirmPassword = "abcd" },
			wantErr: ErrWeakPassword,
		},
		{
			name:    "confirmation mismatch",
			mutate:  func(r *RegisterRequest) { r.ConfirmPassword = "different" },
			wantErr: ErrWeakPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t)
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterMinimumPasswordLength(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := validRequest()
	req.Password = "abcde" // exactly MinPasswordLength
	req.ConfirmPassword = "abcde"

	_, err := svc.Register(context.Background(), req)
	assert.NoError(t, err, "a %d-character password must be accepted", MinPasswordLength)
}

func TestRegisterDuplicates(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	dup := validRequest()
	dup.Username = "someone-else"
	_, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	dup = validRequest()
	dup.Email = "other@example.com"
	_, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestRegisterEmailNormalization(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	req := validRequest()
	req.Email = "  Ada@Example.COM "
	user, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	// The same address in different case is still a duplicate.
	dup := validRequest()
	dup.Email = "ADA@example.com"
	dup.Username = "ada2"
	_, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	session, err := svc.Login(ctx, "ada@example.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "ada", session.Username)
}

func TestLoginDistinguishesFailures(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	// Unknown email and wrong password are distinct failures.
	_, err = svc.Login(ctx, "nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Login(ctx, "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionExpiry(t *testing.T) {
	svc, sessions, clock := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	session, err := svc.Login(ctx, "ada@example.com", "secret")
	require.NoError(t, err)

	_, ok := sessions.Lookup(session.Token)
	assert.True(t, ok, "fresh session must resolve")

	clock.Advance(13 * time.Hour)

	_, ok = sessions.Lookup(session.Token)
	assert.False(t, ok, "session must expire after the TTL")
}

func TestSessionRevoke(t *testing.T) {
	svc, sessions, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	session, err := svc.Login(ctx, "ada@example.com", "secret")
	require.NoError(t, err)

	sessions.Revoke(session.Token)
	_, ok := sessions.Lookup(session.Token)
	assert.False(t, ok)
}
