package article

import (
	"net/http"

	handlerauth "pressbox/internal/handler/http/auth"
	articleuc "pressbox/internal/usecase/article"
)

// Register mounts the article endpoints on mux. Reads are public;
// mutations require a body-carried access token.
func Register(mux *http.ServeMux, svc *articleuc.Service, gate *handlerauth.Gate) {
	mux.HandleFunc("GET /articles", ListHandler(svc))
	mux.HandleFunc("GET /articles/{id}", GetHandler(svc))
	mux.HandleFunc("POST /articles/new", CreateHandler(svc, gate))
	mux.HandleFunc("PUT /articles/{id}/edit", UpdateHandler(svc, gate))
	mux.HandleFunc("DELETE /articles/{id}/delete", DeleteHandler(svc, gate))
}
