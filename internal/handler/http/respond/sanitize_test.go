package respond_test

import (
	"errors"
	"strings"
	"testing"

	"pressbox/internal/handler/http/respond"
)

func TestSanitizeError(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		hide string
	}{
		{
			name: "dsn password",
			in:   "ping database: postgres://app:hunter2@db:5432/pressbox",
			want: "://app:****@",
			hide: "hunter2",
		},
		{
			name: "bearer token",
			in:   "reject header Bearer eyJhbGciOiJIUzI1NiJ9.e30.sig",
			want: "Bearer ****",
			hide: "eyJhbGciOiJIUzI1NiJ9",
		},
		{
			name: "plain message untouched",
			in:   "no such table: articles",
			want: "no such table: articles",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := respond.SanitizeError(errors.New(tc.in))
			if !strings.Contains(got, tc.want) {
				t.Fatalf("got %q, want containing %q", got, tc.want)
			}
			if tc.hide != "" && strings.Contains(got, tc.hide) {
				t.Fatalf("got %q, still contains %q", got, tc.hide)
			}
		})
	}

	if got := respond.SanitizeError(nil); got != "" {
		t.Fatalf("nil error got %q", got)
	}
}
