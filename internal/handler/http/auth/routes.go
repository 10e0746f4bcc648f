package auth

import (
	"net/http"

	usecaseuser "pressbox/internal/usecase/user"
)

// Register mounts the authentication endpoints on mux.
func Register(mux *http.ServeMux, users *usecaseuser.Service, gate *Gate) {
	mux.HandleFunc("POST /register", RegisterHandler(users))
	mux.HandleFunc("POST /login", LoginHandler(gate.Tokens))
}
