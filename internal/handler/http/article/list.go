package article

import (
	"net/http"

	"pressbox/internal/common/pagination"
	"pressbox/internal/handler/http/respond"
	articleuc "pressbox/internal/usecase/article"
)

// ListHandler creates the GET /articles endpoint. The page is read from
// the ?page query parameter; anything unusable falls back to page 1, and
// a page past the end is an empty array, never an error.
func ListHandler(svc *articleuc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pagination.ParsePage(r)

		articles, err := svc.List(r.Context(), page)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, toSummaryDTOs(articles))
	}
}
