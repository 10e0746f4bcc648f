package article

import (
	"errors"
	"log/slog"
	"net/http"

	handlerauth "pressbox/internal/handler/http/auth"
	"pressbox/internal/handler/http/pathutil"
	"pressbox/internal/handler/http/requestid"
	"pressbox/internal/handler/http/respond"
	articleuc "pressbox/internal/usecase/article"
)

// UpdateHandler creates the PUT /articles/{id}/edit endpoint. The use
// case enforces the existence, ownership, and validation order; this
// handler only decodes, authenticates, and maps the outcome.
func UpdateHandler(svc *articleuc.Service, gate *handlerauth.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateRequest
		if err := decodeBody(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, err)
			return
		}

		user, err := gate.Authenticate(r.Context(), req.BearerToken())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		id, err := pathutil.ParseID(r.PathValue("id"))
		if err != nil {
			respond.Error(w, http.StatusNotFound, errors.New("article not found"))
			return
		}

		art, err := svc.Update(r.Context(), user, id, req.Title, req.Text)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		slog.Info("article updated",
			slog.String("request_id", requestid.FromContext(r.Context())),
			slog.Int64("article_id", art.ID),
			slog.Int64("user_id", user.ID))

		respond.JSON(w, http.StatusOK, toArticleDTO(art))
	}
}
