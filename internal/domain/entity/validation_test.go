package entity_test

import (
	"errors"
	"strings"
	"testing"

	"pressbox/internal/domain/entity"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid simple", "alice01", false},
		{"valid with symbols", "al!ce_#1", false},
		{"valid min length", "abcde", false},
		{"valid max length", "a1234567890123456789", false},
		{"too short", "abcd", true},
		{"too long", "a12345678901234567890", true},
		{"empty", "", true},
		{"space", "ali ce", true},
		{"unicode", "алиса", true},
		{"disallowed symbol", "alice+1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateUsername(%q) err=%v, wantErr=%v", tt.username, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, entity.ErrInvalidUsername) {
				t.Fatalf("err=%v, want ErrInvalidUsername", err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Str0ng!Pass", false},
		{"valid min length", "Aa1!bcde", false},
		{"too short", "Aa1!bcd", true},
		{"no uppercase", "str0ng!pass", true},
		{"no lowercase", "STR0NG!PASS", true},
		{"no digit", "Strong!Pass", true},
		{"no symbol", "Str0ngPass1", true},
		{"disallowed char", "Str0ng!Pass?", true},
		{"empty", "", true},
		{"too long", "Aa1!" + strings.Repeat("a", 40), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePassword(%q) err=%v, wantErr=%v", tt.password, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, entity.ErrInvalidPassword) {
				t.Fatalf("err=%v, want ErrInvalidPassword", err)
			}
		})
	}
}

func TestValidateCredentials_UsernameCheckedFirst(t *testing.T) {
	err := entity.ValidateCredentials("ab", "bad")
	if !errors.Is(err, entity.ErrInvalidUsername) {
		t.Fatalf("err=%v, want ErrInvalidUsername", err)
	}
	if err := entity.ValidateCredentials("alice", "Str0ng!Pass"); err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&entity.ValidationError{Field: "Article title", Message: "is missing"}, "Article title is missing"},
		{&entity.NotFoundError{Resource: "Article", ID: 3}, "Article with id=3 was not found"},
		{&entity.ConflictError{Resource: "User"}, "User with such name already exists"},
		{&entity.ForbiddenError{Action: "edit"}, "you can edit only your own articles"},
		{&entity.ForbiddenError{Action: "delete"}, "you can delete only your own articles"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error()=%q, want %q", got, tt.want)
		}
	}
}
