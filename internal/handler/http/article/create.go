package article

import (
	"log/slog"
	"net/http"

	handlerauth "pressbox/internal/handler/http/auth"
	"pressbox/internal/handler/http/requestid"
	"pressbox/internal/handler/http/respond"
	articleuc "pressbox/internal/usecase/article"
)

// CreateHandler creates the POST /articles/new endpoint. The request body
// carries the access token alongside the article fields; the token gate
// runs before field validation so an unauthenticated request is always a
// 401 no matter how broken the rest of the body is.
func CreateHandler(svc *articleuc.Service, gate *handlerauth.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := decodeBody(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, err)
			return
		}

		user, err := gate.Authenticate(r.Context(), req.BearerToken())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		art, err := svc.Create(r.Context(), user.ID, req.Title, req.Text)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		slog.Info("article created",
			slog.String("request_id", requestid.FromContext(r.Context())),
			slog.Int64("article_id", art.ID),
			slog.Int64("user_id", user.ID))

		respond.JSON(w, http.StatusOK, toArticleDTO(art))
	}
}
