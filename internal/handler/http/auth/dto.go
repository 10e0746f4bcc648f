package auth

import (
	"time"

	"pressbox/internal/domain/entity"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	AccessToken string `json:"access-token"`
}

// userDTO is the public representation of an account. The password never
// appears in any response.
type userDTO struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	DateRegistered string `json:"date_registered"`
}

func toUserDTO(u *entity.User) userDTO {
	return userDTO{
		ID:             u.ID,
		Username:       u.Username,
		DateRegistered: u.DateRegistered.UTC().Format(time.RFC3339),
	}
}
