// Package auth implements the authentication core: credential checks
// against the user store, stateless bearer token issuance and verification,
// and the ownership guard that gates article mutation.
package auth

import "errors"

// Sentinel errors for authentication operations.
var (
	// ErrBadCredentials indicates the username/password pair does not match
	// any stored user.
	ErrBadCredentials = errors.New("incorrect username or password")

	// ErrMissingToken indicates a protected request carried no token.
	ErrMissingToken = errors.New("access-token is missing, log in please")

	// ErrMalformedToken indicates the token could not be parsed.
	ErrMalformedToken = errors.New("malformed access-token")

	// ErrBadSignature indicates the token signature does not validate
	// against the process secret.
	ErrBadSignature = errors.New("invalid access-token signature")

	// ErrUnknownPrincipal indicates a validly signed token whose claims no
	// longer match any stored user (e.g. the password changed since issue).
	ErrUnknownPrincipal = errors.New("access-token does not match any user")
)
