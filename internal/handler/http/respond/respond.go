// Package respond writes JSON responses and keeps internal error details
// out of client-facing bodies.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// JSON writes v as a JSON body with the given status code. A nil v writes
// headers only.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; nothing to do but log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes the error message in the standard {"error": ...} envelope.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// SafeError responds with a generic "internal server error" envelope and
// logs the sanitized detail. The original message never reaches the client,
// whatever the status code; client-facing domain messages go through Error.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
