package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"pressbox/internal/handler/http/requestid"
	"pressbox/internal/handler/http/respond"
	authsvc "pressbox/internal/service/auth"
)

// LoginHandler creates the POST /login endpoint. Successful logins answer
// with the user's identity and a signed access token; bad credentials
// always produce the same 401 message regardless of which part was wrong.
func LoginHandler(tokens *authsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RecordAuthRequest("login", "failure")
			RecordAuthDuration("login", time.Since(start).Seconds())
			respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		if req.Username == "" {
			RecordAuthRequest("login", "failure")
			RecordAuthDuration("login", time.Since(start).Seconds())
			respond.Error(w, http.StatusBadRequest, errors.New("Username is missing"))
			return
		}
		if req.Password == "" {
			RecordAuthRequest("login", "failure")
			RecordAuthDuration("login", time.Since(start).Seconds())
			respond.Error(w, http.StatusBadRequest, errors.New("Password is missing"))
			return
		}

		user, err := tokens.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			RecordAuthRequest("login", "failure")
			RecordAuthDuration("login", time.Since(start).Seconds())

			if errors.Is(err, authsvc.ErrBadCredentials) {
				logger.Warn("login rejected", slog.String("username", req.Username))
				respond.Error(w, http.StatusUnauthorized, err)
				return
			}
			logger.Error("login failed", slog.String("error", respond.SanitizeError(err)))
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		token, err := tokens.Issue(user.Username, user.Password)
		if err != nil {
			RecordAuthRequest("login", "failure")
			RecordAuthDuration("login", time.Since(start).Seconds())
			logger.Error("token issue failed", slog.String("error", respond.SanitizeError(err)))
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		logger.Info("login successful",
			slog.Int64("user_id", user.ID),
			slog.String("username", user.Username),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))

		RecordAuthRequest("login", "success")
		RecordAuthDuration("login", time.Since(start).Seconds())
		respond.JSON(w, http.StatusOK, loginResponse{
			UserID:      user.ID,
			Username:    user.Username,
			AccessToken: token,
		})
	}
}
