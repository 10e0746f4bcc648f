// Package middleware provides cross-cutting HTTP middleware.
package middleware

import (
	"net/http"
	"strconv"
	"strings"

	pkgconfig "pressbox/pkg/config"
)

// CORSConfig controls the CORS middleware.
type CORSConfig struct {
	// AllowedOrigins lists exact origins, or a single "*" to allow any.
	AllowedOrigins []string
	// AllowedMethods and AllowedHeaders populate the preflight response.
	AllowedMethods []string
	AllowedHeaders []string
	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge int
}

// DefaultCORSConfig allows any origin with the methods the API serves.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         600,
	}
}

// CORSConfigFromEnv reads CORS_ALLOWED_ORIGINS as a comma-separated list,
// falling back to the permissive default.
func CORSConfigFromEnv() CORSConfig {
	cfg := DefaultCORSConfig()
	cfg.AllowedOrigins = pkgconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", cfg.AllowedOrigins)
	return cfg
}

// CORS returns middleware applying cfg. Preflight OPTIONS requests are
// answered with 204; disallowed origins get no CORS headers at all.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	allowAny := len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*"
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (allowAny || originAllowed(cfg.AllowedOrigins, origin)) {
				if allowAny {
					w.Header().Set("Access-Control-Allow-Origin", "*")
				} else {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Add("Vary", "Origin")
				}

				if r.Method == http.MethodOptions {
					w.Header().Set("Access-Control-Allow-Methods", methods)
					w.Header().Set("Access-Control-Allow-Headers", headers)
					w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(allowed []string, origin string) bool {
	for _, o := range allowed {
		if strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}
