package user

import (
	"errors"
	"net/http"

	"pressbox/internal/common/pagination"
	"pressbox/internal/domain/entity"
	"pressbox/internal/handler/http/pathutil"
	"pressbox/internal/handler/http/respond"
	articleuc "pressbox/internal/usecase/article"
	usecaseuser "pressbox/internal/usecase/user"
)

// ArticlesHandler creates the GET /users/{id}/articles endpoint. The user
// must exist; their articles are then paged exactly like the global
// listing, with an empty page encoding as [].
func ArticlesHandler(users *usecaseuser.Service, articles *articleuc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathutil.ParseID(r.PathValue("id"))
		if err != nil {
			respond.Error(w, http.StatusNotFound, errors.New("user not found"))
			return
		}

		if _, err := users.Get(r.Context(), id); err != nil {
			var notFound *entity.NotFoundError
			if errors.As(err, &notFound) {
				respond.Error(w, http.StatusNotFound, err)
				return
			}
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		page := pagination.ParsePage(r)
		list, err := articles.ListByUser(r.Context(), id, page)
		if err != nil {
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		respond.JSON(w, http.StatusOK, toSummaryDTOs(list))
	}
}
