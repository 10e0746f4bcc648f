package entity

import "time"

// User is a registered account.
//
// Password holds the credential exactly as supplied at registration; it
// is compared verbatim during login and token verification and must never
// be serialized into any response.
type User struct {
	ID             int64
	Username       string
	Password       string
	DateRegistered time.Time
}
