package user

import (
	"errors"
	"net/http"

	"pressbox/internal/domain/entity"
	"pressbox/internal/handler/http/pathutil"
	"pressbox/internal/handler/http/respond"
	usecaseuser "pressbox/internal/usecase/user"
)

// ProfileHandler creates the GET /users/{id} endpoint. An unparsable id
// is reported the same way as an unknown user.
func ProfileHandler(svc *usecaseuser.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathutil.ParseID(r.PathValue("id"))
		if err != nil {
			respond.Error(w, http.StatusNotFound, errors.New("user not found"))
			return
		}

		u, err := svc.Get(r.Context(), id)
		if err != nil {
			var notFound *entity.NotFoundError
			if errors.As(err, &notFound) {
				respond.Error(w, http.StatusNotFound, err)
				return
			}
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		respond.JSON(w, http.StatusOK, toProfileDTO(u))
	}
}
