package auth_test

import (
	"errors"
	"testing"

	"pressbox/internal/domain/entity"
	"pressbox/internal/service/auth"
)

func TestAuthorize(t *testing.T) {
	owner := &entity.User{ID: 7, Username: "alice"}
	other := &entity.User{ID: 8, Username: "bobby"}

	if err := auth.Authorize(owner, 7, auth.ActionEdit); err != nil {
		t.Fatalf("owner denied: %v", err)
	}

	err := auth.Authorize(other, 7, auth.ActionEdit)
	var forbidden *entity.ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("non-owner err=%v, want ForbiddenError", err)
	}
	if forbidden.Action != "edit" {
		t.Fatalf("Action=%q, want edit", forbidden.Action)
	}

	err = auth.Authorize(other, 7, auth.ActionDelete)
	if !errors.As(err, &forbidden) || forbidden.Action != "delete" {
		t.Fatalf("delete denial err=%v, want ForbiddenError{delete}", err)
	}

	if err := auth.Authorize(nil, 7, auth.ActionEdit); err == nil {
		t.Fatal("nil user allowed")
	}
}
