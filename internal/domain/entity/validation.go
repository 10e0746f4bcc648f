package entity

import (
	"regexp"
	"strings"
	"unicode"
)

// Credential format rules. The symbol set is shared between usernames and
// passwords; both fields are restricted to alphanumerics plus these symbols.
const credentialSymbols = "!@#$%^&*_-"

var (
	usernamePattern      = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*_-]{5,20}$`)
	passwordCharsPattern = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*_-]{8,40}$`)
)

// ValidateUsername checks the username format: 5-20 characters drawn from
// alphanumerics and the credential symbol set.
// Returns ErrInvalidUsername on violation.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// ValidatePassword checks the password format: 8-40 characters drawn from
// alphanumerics and the credential symbol set, containing at least one
// uppercase letter, one lowercase letter, one digit, and one symbol.
// Returns ErrInvalidPassword on violation.
func ValidatePassword(password string) error {
	if !passwordCharsPattern.MatchString(password) {
		return ErrInvalidPassword
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(credentialSymbols, r):
			symbol = true
		}
	}
	if !upper || !lower || !digit || !symbol {
		return ErrInvalidPassword
	}
	return nil
}

// ValidateCredentials validates a username/password pair before any
// persistence is attempted. The username is checked first.
func ValidateCredentials(username, password string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}
	return ValidatePassword(password)
}
