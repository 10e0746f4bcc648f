package article

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"pressbox/internal/domain/entity"
	"pressbox/internal/handler/http/respond"
	authsvc "pressbox/internal/service/auth"
)

// decodeBody decodes a JSON request body into v. An empty body leaves v
// zero-valued so the missing-token check runs instead of a decode error.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return errors.New("invalid request body")
	}
	return nil
}

// writeDomainError maps domain and auth errors to their status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		notFound   *entity.NotFoundError
		forbidden  *entity.ForbiddenError
		validation *entity.ValidationError
	)
	switch {
	case errors.Is(err, authsvc.ErrMissingToken),
		errors.Is(err, authsvc.ErrMalformedToken),
		errors.Is(err, authsvc.ErrBadSignature),
		errors.Is(err, authsvc.ErrUnknownPrincipal):
		respond.Error(w, http.StatusUnauthorized, err)
	case errors.As(err, &notFound):
		respond.Error(w, http.StatusNotFound, err)
	case errors.As(err, &forbidden):
		respond.Error(w, http.StatusForbidden, err)
	case errors.As(err, &validation):
		respond.Error(w, http.StatusBadRequest, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
