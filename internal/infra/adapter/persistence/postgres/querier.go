// Package postgres implements the repository interfaces against PostgreSQL
// through database/sql with the pgx driver.
package postgres

import (
	"context"
	"database/sql"
)

// Querier is the subset of *sql.DB the repositories depend on. Both
// *sql.DB and the circuit breaker wrapper in internal/resilience satisfy
// it, so breaker protection can be injected at wiring time.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
