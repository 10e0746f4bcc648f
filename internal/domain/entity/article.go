package entity

import "time"

// Article represents a published article in the system.
// UserID is the owning user, assigned at creation and never reassigned.
type Article struct {
	ID         int64
	UserID     int64
	Title      string
	Text       string
	DatePosted time.Time
}
