package pathutil

import (
	"regexp"
	"strings"
)

// pathPatterns maps dynamic routes to templates, most specific first.
// Pre-compiled so NormalizePath stays cheap on the hot path.
var pathPatterns = []struct {
	pattern  *regexp.Regexp
	template string
}{
	{regexp.MustCompile(`^/articles/\d+/edit$`), "/articles/:id/edit"},
	{regexp.MustCompile(`^/articles/\d+/delete$`), "/articles/:id/delete"},
	{regexp.MustCompile(`^/articles/\d+$`), "/articles/:id"},
	{regexp.MustCompile(`^/users/\d+/articles$`), "/users/:id/articles"},
	{regexp.MustCompile(`^/users/\d+$`), "/users/:id"},
}

// NormalizePath collapses paths containing record IDs into their route
// templates (/articles/123 becomes /articles/:id) so per-path metric
// labels stay bounded. Query strings and trailing slashes are stripped;
// static paths pass through unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
