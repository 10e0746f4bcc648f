package user

import (
	"net/http"

	articleuc "pressbox/internal/usecase/article"
	usecaseuser "pressbox/internal/usecase/user"
)

// Register mounts the public profile endpoints on mux.
func Register(mux *http.ServeMux, users *usecaseuser.Service, articles *articleuc.Service) {
	mux.HandleFunc("GET /users/{id}", ProfileHandler(users))
	mux.HandleFunc("GET /users/{id}/articles", ArticlesHandler(users, articles))
}
