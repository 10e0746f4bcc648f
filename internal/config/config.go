// Package config loads and validates application configuration from
// environment variables.
package config

import (
	"fmt"
	"time"

	"pressbox/internal/common/pagination"
	pkgconfig "pressbox/pkg/config"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultAddr            = ":8080"
	DefaultBodyLimit       = 1 << 20 // 1 MiB
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds the runtime configuration of the API server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// DatabaseURL is the Postgres DSN.
	DatabaseURL string
	// SecretKey signs and verifies access tokens.
	SecretKey []byte
	// ArticlesPerPage is the fixed page size for all article listings.
	ArticlesPerPage int
	// BodyLimit caps request body size in bytes.
	BodyLimit int64
	// ShutdownTimeout bounds graceful shutdown on termination signals.
	ShutdownTimeout time.Duration
	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	CORSAllowedOrigins []string
}

// Load reads configuration from the environment. DATABASE_URL and a valid
// SECRET_KEY are required; everything else has a default.
func Load() (*Config, error) {
	secret := pkgconfig.GetEnvString("SECRET_KEY", "")
	if err := validateSecret(secret); err != nil {
		return nil, err
	}

	dsn := pkgconfig.GetEnvString("DATABASE_URL", "")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	perPage := pkgconfig.GetEnvInt("ARTICLES_PER_PAGE", pagination.DefaultPageSize)
	if perPage < 1 {
		return nil, fmt.Errorf("ARTICLES_PER_PAGE must be positive, got %d", perPage)
	}

	return &Config{
		Addr:               pkgconfig.GetEnvString("ADDR", DefaultAddr),
		DatabaseURL:        dsn,
		SecretKey:          []byte(secret),
		ArticlesPerPage:    perPage,
		BodyLimit:          int64(pkgconfig.GetEnvInt("BODY_LIMIT_BYTES", DefaultBodyLimit)),
		ShutdownTimeout:    pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		CORSAllowedOrigins: pkgconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}, nil
}

// validateSecret enforces a minimum key length for HS256 and rejects
// well-known placeholder values.
func validateSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("SECRET_KEY must be set")
	}
	if len(secret) < 32 {
		return fmt.Errorf("SECRET_KEY must be at least 32 characters (256 bits)")
	}
	weak := []string{"secret", "password", "test", "admin", "default", "changeme"}
	for _, w := range weak {
		if secret == w || secret == w+"123" {
			return fmt.Errorf("SECRET_KEY must not be a common weak value")
		}
	}
	return nil
}
