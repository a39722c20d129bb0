// Package store persists user and comment records in a document store.
// The production implementation is MongoDB; an in-memory implementation
// backs tests and local mode. Uniqueness of user email and username is
// enforced by the store itself (unique indexes in Mongo, a lock in the
// memory store) so two racing registrations cannot both succeed.
package store

import (
	"context"
	"errors"

	"africlimate/internal/models"
)

var (
	// ErrNotFound indicates no record matched the query.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey indicates an insert violated a uniqueness constraint.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Store is the document-store contract the auth and comment services
// depend on.
type Store interface {
	// InsertUser stores a new user record. Returns ErrDuplicateKey when
	// email or username already exists.
	InsertUser(ctx context.Context, user models.UserRecord) (models.UserRecord, error)

	// FindUserByEmail returns the user with the given email, or ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.UserRecord, error)

	// FindUserByUsername returns the user with the given username, or ErrNotFound.
	FindUserByUsername(ctx context.Context, username string) (models.UserRecord, error)

	// InsertComment stores a new comment record.
	InsertComment(ctx context.Context, comment models.CommentRecord) (models.CommentRecord, error)

	// ListComments returns all comments for a chart tag in insertion order.
	// An unknown tag yields an empty slice, not an error.
	ListComments(ctx context.Context, chartTag string) ([]models.CommentRecord, error)

	// Close releases the underlying client resources.
	Close(ctx context.Context) error
}
