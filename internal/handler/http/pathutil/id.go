// Package pathutil parses and normalizes URL paths.
package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when a path segment is not a positive integer ID.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a path wildcard value as a positive int64 ID.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
