package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"pressbox/internal/domain/entity"
	"pressbox/internal/handler/http/requestid"
	"pressbox/internal/handler/http/respond"
	usecaseuser "pressbox/internal/usecase/user"
)

// RegisterHandler creates the POST /register endpoint. It validates that
// both fields are present, delegates format checks and persistence to the
// user service, and answers with the public representation of the new
// account.
func RegisterHandler(users *usecaseuser.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RecordAuthRequest("register", "failure")
			RecordAuthDuration("register", time.Since(start).Seconds())
			respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		if req.Username == "" {
			RecordAuthRequest("register", "failure")
			RecordAuthDuration("register", time.Since(start).Seconds())
			respond.Error(w, http.StatusBadRequest, errors.New("Username is missing"))
			return
		}
		if req.Password == "" {
			RecordAuthRequest("register", "failure")
			RecordAuthDuration("register", time.Since(start).Seconds())
			respond.Error(w, http.StatusBadRequest, errors.New("Password is missing"))
			return
		}

		u, err := users.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			RecordAuthRequest("register", "failure")
			RecordAuthDuration("register", time.Since(start).Seconds())

			var conflict *entity.ConflictError
			switch {
			case errors.Is(err, entity.ErrInvalidUsername), errors.Is(err, entity.ErrInvalidPassword):
				respond.Error(w, http.StatusBadRequest, err)
			case errors.As(err, &conflict):
				respond.Error(w, http.StatusConflict, err)
			default:
				logger.Error("registration failed", slog.String("error", respond.SanitizeError(err)))
				respond.SafeError(w, http.StatusInternalServerError, err)
			}
			return
		}

		logger.Info("user registered",
			slog.Int64("user_id", u.ID),
			slog.String("username", u.Username),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))

		RecordAuthRequest("register", "success")
		RecordAuthDuration("register", time.Since(start).Seconds())
		respond.JSON(w, http.StatusOK, toUserDTO(u))
	}
}
