// Package auth provides the registration and login endpoints and the
// request gate that resolves bearer tokens carried in request bodies.
package auth

import (
	"context"

	"pressbox/internal/domain/entity"
	authsvc "pressbox/internal/service/auth"
)

// TokenField is embedded in protected request DTOs. Tokens travel in the
// JSON body, not an Authorization header; "access-token" is the canonical
// field and "token" is accepted as an alias.
type TokenField struct {
	AccessToken string `json:"access-token"`
	Token       string `json:"token"`
}

// BearerToken returns the supplied token, preferring "access-token".
func (f TokenField) BearerToken() string {
	if f.AccessToken != "" {
		return f.AccessToken
	}
	return f.Token
}

// Gate authenticates protected requests from their body-carried token.
type Gate struct {
	Tokens *authsvc.Service
}

// Authenticate resolves token to a live user. An empty token fails with
// auth.ErrMissingToken; verification failures pass through from the token
// service.
func (g *Gate) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, authsvc.ErrMissingToken
	}
	return g.Tokens.Verify(ctx, token)
}
