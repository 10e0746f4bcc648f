// Package repository defines the persistence interfaces consumed by the
// use case and service layers. Implementations live under
// internal/infra/adapter/persistence.
package repository

import (
	"context"

	"pressbox/internal/domain/entity"
)

// UserRepository provides access to stored user accounts.
//
// Passwords are persisted exactly as supplied at registration (no hashing);
// the token protocol compares the stored value verbatim per request.
type UserRepository interface {
	// Create persists a new user and assigns its ID and registration
	// timestamp. Returns *entity.ConflictError if the username is taken;
	// the uniqueness check is delegated to the store's constraint so
	// concurrent registrations resolve atomically.
	Create(ctx context.Context, user *entity.User) error
	// Get retrieves a user by ID. Returns (nil, nil) if no user matches.
	Get(ctx context.Context, id int64) (*entity.User, error)
	// GetByUsername retrieves a user by username. Returns (nil, nil) if no
	// user matches.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// CountUsers returns the total number of registered users.
	CountUsers(ctx context.Context) (int64, error)
}
