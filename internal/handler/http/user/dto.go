// Package user provides the public profile endpoints: a user's account
// details and their paginated articles.
package user

import (
	"time"

	"pressbox/internal/domain/entity"
)

// profileDTO is the public representation of an account; the password is
// never exposed.
type profileDTO struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	DateRegistered string `json:"date_registered"`
}

func toProfileDTO(u *entity.User) profileDTO {
	return profileDTO{
		ID:             u.ID,
		Username:       u.Username,
		DateRegistered: u.DateRegistered.UTC().Format(time.RFC3339),
	}
}

// summaryDTO mirrors the article listing shape: no text body.
type summaryDTO struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	UserID     int64  `json:"user_id"`
	DatePosted string `json:"date_posted"`
}

func toSummaryDTOs(articles []*entity.Article) []summaryDTO {
	out := make([]summaryDTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, summaryDTO{
			ID:         a.ID,
			Title:      a.Title,
			UserID:     a.UserID,
			DatePosted: a.DatePosted.UTC().Format(time.RFC3339),
		})
	}
	return out
}
