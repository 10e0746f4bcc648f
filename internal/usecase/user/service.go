// Package user provides use cases for account registration and public
// profile retrieval.
package user

import (
	"context"
	"errors"
	"fmt"

	"pressbox/internal/domain/entity"
	"pressbox/internal/repository"
)

// Service provides user management use cases.
type Service struct {
	Repo repository.UserRepository
}

// Register validates credential formats and creates the account.
// Format violations fail with entity.ErrInvalidUsername or
// entity.ErrInvalidPassword before persistence is attempted; a taken
// username surfaces as *entity.ConflictError from the store's unique
// constraint.
func (s *Service) Register(ctx context.Context, username, password string) (*entity.User, error) {
	if err := entity.ValidateCredentials(username, password); err != nil {
		return nil, err
	}

	u := &entity.User{Username: username, Password: password}
	if err := s.Repo.Create(ctx, u); err != nil {
		var conflict *entity.ConflictError
		if errors.As(err, &conflict) {
			return nil, conflict
		}
		return nil, fmt.Errorf("register user: %w", err)
	}
	return u, nil
}

// Get retrieves a user by ID for public profile display.
// Returns *entity.NotFoundError if the user does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, &entity.NotFoundError{Resource: "User", ID: id}
	}
	return u, nil
}
