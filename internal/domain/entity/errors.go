package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for credential format violations.
var (
	// ErrInvalidUsername indicates the username does not satisfy the format rules.
	ErrInvalidUsername = errors.New("bad username format")

	// ErrInvalidPassword indicates the password does not satisfy the format rules.
	ErrInvalidPassword = errors.New("bad password format")
)

// ValidationError represents a request validation failure with field context.
// Error() yields the user-facing message, e.g. "Article title is missing".
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// NotFoundError indicates that the identified resource does not exist.
type NotFoundError struct {
	Resource string
	ID       int64
}

// Error returns a formatted message naming the resource and id.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id=%d was not found", e.Resource, e.ID)
}

// ConflictError indicates a uniqueness violation on the named resource.
type ConflictError struct {
	Resource string
}

// Error returns a formatted message for the conflict.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with such name already exists", e.Resource)
}

// ForbiddenError indicates an ownership check rejected the attempted action.
// Action carries the operation name ("edit" or "delete") for the message.
type ForbiddenError struct {
	Action string
}

// Error returns a formatted message naming the denied action.
func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("you can %s only your own articles", e.Action)
}
