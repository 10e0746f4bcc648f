// Package pagination provides offset-based pagination helpers for listing
// endpoints. Pages are 1-indexed and the page size is fixed process-wide.
package pagination

import (
	"math"
	"net/http"
	"strconv"
)

// Config holds pagination configuration. PageSize is decided once at
// startup and shared by every listing endpoint.
type Config struct {
	PageSize int
}

// DefaultPageSize is the number of articles per page when not configured.
const DefaultPageSize = 10

// DefaultConfig returns the default pagination configuration.
func DefaultConfig() Config {
	return Config{PageSize: DefaultPageSize}
}

// ParsePage extracts the 1-based page number from the request query string.
// A missing, unparsable, or non-positive "page" parameter falls back to
// page 1: listing endpoints never fail on bad pagination input.
func ParsePage(r *http.Request) int {
	pageStr := r.URL.Query().Get("page")
	if pageStr == "" {
		return 1
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// CalculateOffset calculates the database OFFSET for a 1-based page number.
// The result is never negative: a page large enough to overflow the
// multiplication saturates to math.MaxInt, which reads as a page beyond the
// data rather than an invalid OFFSET.
//
// Examples:
//   - Page 1, PageSize 10 -> Offset 0
//   - Page 3, PageSize 10 -> Offset 20
func CalculateOffset(page, pageSize int) int {
	if page < 1 || pageSize < 1 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}
