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

// DeleteHandler creates the DELETE /articles/{id}/delete endpoint. The
// response echoes the deleted article's last state.
func DeleteHandler(svc *articleuc.Service, gate *handlerauth.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteRequest
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

		art, err := svc.Delete(r.Context(), user, id)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		slog.Info("article deleted",
			slog.String("request_id", requestid.FromContext(r.Context())),
			slog.Int64("article_id", art.ID),
			slog.Int64("user_id", user.ID))

		respond.JSON(w, http.StatusOK, toArticleDTO(art))
	}
}
