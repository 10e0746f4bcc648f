package respond

import "regexp"

var (
	// Credentials embedded in a DSN: ://user:password@host
	dsnPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

	// Bearer tokens that leak into wrapped error strings.
	bearerTokenPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._-]+`)
)

// SanitizeError masks credentials before an error message reaches logs.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	msg = dsnPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")
	return msg
}
