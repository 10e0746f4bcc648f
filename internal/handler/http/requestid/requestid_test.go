package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pressbox/internal/handler/http/requestid"
)

func TestMiddleware_GeneratesID(t *testing.T) {
	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))

	if seen == "" {
		t.Fatal("no request ID in context")
	}
	if got := rec.Header().Get(requestid.RequestIDHeader); got != seen {
		t.Fatalf("response header %q, context %q", got, seen)
	}
}

func TestMiddleware_PropagatesExistingID(t *testing.T) {
	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Header.Set(requestid.RequestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != "client-supplied-id" {
		t.Fatalf("context ID=%q, want client-supplied-id", seen)
	}
	if got := rec.Header().Get(requestid.RequestIDHeader); got != "client-supplied-id" {
		t.Fatalf("header=%q", got)
	}
}

func TestFromContext_Empty(t *testing.T) {
	if got := requestid.FromContext(context.Background()); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}
