package article

import (
	"errors"
	"net/http"

	"pressbox/internal/handler/http/pathutil"
	"pressbox/internal/handler/http/respond"
	articleuc "pressbox/internal/usecase/article"
)

// GetHandler creates the GET /articles/{id} endpoint. An unparsable id is
// reported the same way as a missing article.
func GetHandler(svc *articleuc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathutil.ParseID(r.PathValue("id"))
		if err != nil {
			respond.Error(w, http.StatusNotFound, errors.New("article not found"))
			return
		}

		art, err := svc.Get(r.Context(), id)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, toArticleDTO(art))
	}
}
