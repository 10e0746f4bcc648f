package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"pressbox/internal/domain/entity"
	"pressbox/internal/repository"
)

// Service issues and verifies bearer tokens and resolves login credentials
// against the user store.
//
// The token binds {username, password} as HS256-signed claims with no
// expiry. Signing the raw password into the token is a known protocol smell
// kept for wire compatibility: it leaks the credential to anyone who can
// read a token, and it couples token lifetime to the password value. The
// one property it does buy is that rotating a password invalidates every
// outstanding token, because Verify re-resolves the claims against the
// store on each request.
type Service struct {
	users  repository.UserRepository
	secret []byte
}

// NewService creates an authentication service signing with the given
// process-wide secret.
func NewService(users repository.UserRepository, secret []byte) *Service {
	return &Service{users: users, secret: secret}
}

// Authenticate resolves a username/password pair to the stored user.
// Returns ErrBadCredentials when no user matches; the password comparison
// is constant-time.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if user == nil || subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, ErrBadCredentials
	}
	return user, nil
}

// Issue produces a signed token binding the given credential claims.
func (s *Service) Issue(username, password string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"password": password,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token and resolves it to the current stored user.
//
// This is deliberately not a pure cryptographic check: after the signature
// validates, the claimed identity is re-resolved against the store and the
// password claim compared to the stored value, so stale claims fail with
// ErrUnknownPrincipal. Returns ErrMalformedToken when the token cannot be
// parsed and ErrBadSignature when the signature does not validate.
func (s *Service) Verify(ctx context.Context, tokenString string) (*entity.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		default:
			return nil, ErrMalformedToken
		}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformedToken
	}
	username, _ := claims["username"].(string)
	password, _ := claims["password"].(string)
	if username == "" || password == "" {
		return nil, ErrMalformedToken
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	if user == nil || subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, ErrUnknownPrincipal
	}
	return user, nil
}
