// Package auth implements registration, login and session handling for
// the dashboard's optional accounts. Passwords are bcrypt-hashed before
// they reach the store; the plain-text comparison of the original system
// was a known weakness and is not preserved.
package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"

	"africlimate/internal/models"
	"africlimate/internal/store"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 5

var (
	// ErrInvalidEmail indicates the email does not look like an address.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrMissingUsername indicates an empty username.
	ErrMissingUsername = errors.New("username is required")

	// ErrDuplicateUsername indicates the username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrWeakPassword indicates a missing, short or unconfirmed password.
	ErrWeakPassword = errors.New("weak password")

	// ErrUserNotFound indicates no account exists for the login email.
	ErrUserNotFound = errors.New("no account for this email")

	// ErrInvalidCredentials indicates the password did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RegisterRequest carries the registration form fields, validated here at
// the boundary before any store call.
type RegisterRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Service validates credentials against the store and issues sessions.
type Service struct {
	store    store.Store
	sessions *Sessions
	clock    clockwork.Clock
}

// NewService creates an auth service on top of a store.
func NewService(st store.Store, sessions *Sessions, clock clockwork.Clock) *Service {
	return &Service{store: st, sessions: sessions, clock: clock}
}

// Register validates a registration request and creates the user record.
// Checks run in a fixed order and the first failure wins: email format,
// email uniqueness, username presence, username uniqueness, password
// presence, password length, password confirmation.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (models.UserRecord, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	username := strings.TrimSpace(req.Username)

	if !emailRe.MatchString(email) {
		return models.UserRecord{}, fmt.Errorf("%w: %q", ErrInvalidEmail, req.Email)
	}
	if _, err := s.store.FindUserByEmail(ctx, email); err == nil {
		return models.UserRecord{}, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return models.UserRecord{}, fmt.Errorf("check email uniqueness: %w", err)
	}
	if username == "" {
		return models.UserRecord{}, ErrMissingUsername
	}
	if _, err := s.store.FindUserByUsername(ctx, username); err == nil {
		return models.UserRecord{}, ErrDuplicateUsername
	} else if !errors.Is(err, store.ErrNotFound) {
		return models.UserRecord{}, fmt.Errorf("check username uniqueness: %w", err)
	}
	if req.Password == "" {
		return models.UserRecord{}, fmt.Errorf("%w: password is required", ErrWeakPassword)
	}
	if len(req.Password) < MinPasswordLength {
		return models.UserRecord{}, fmt.Errorf("%w: must be at least %d characters", ErrWeakPassword, MinPasswordLength)
	}
	if req.Password != req.ConfirmPassword {
		return models.UserRecord{}, fmt.Errorf("%w: passwords do not match", ErrWeakPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.UserRecord{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now().UTC(),
	}

	created, err := s.store.InsertUser(ctx, user)
	if errors.Is(err, store.ErrDuplicateKey) {
		// A concurrent registration won the race; the store's uniqueness
		// constraint is the authority.
		return models.UserRecord{}, ErrDuplicateEmail
	}
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// Login checks credentials and issues a session. Lookup happens by email
// first so an unknown address reports ErrUserNotFound, distinct from a
// wrong password; the distinction is deliberate user-facing clarity.
func (s *Service) Login(ctx context.Context, email, password string) (models.Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.store.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return models.Session{}, ErrUserNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.Session{}, ErrInvalidCredentials
	}

	return s.sessions.Issue(user), nil
}
