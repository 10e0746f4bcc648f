// Package article provides the HTTP endpoints for creating, reading,
// listing, and mutating articles.
package article

import (
	"time"

	"pressbox/internal/domain/entity"
	handlerauth "pressbox/internal/handler/http/auth"
)

type createRequest struct {
	handlerauth.TokenField
	Title string `json:"title"`
	Text  string `json:"text"`
}

type updateRequest struct {
	handlerauth.TokenField
	Title string `json:"title"`
	Text  string `json:"text"`
}

type deleteRequest struct {
	handlerauth.TokenField
}

// articleDTO is the full representation returned by single-article reads
// and mutations.
type articleDTO struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	UserID     int64  `json:"user_id"`
	DatePosted string `json:"date_posted"`
}

// summaryDTO is the listing representation; it omits the text body.
type summaryDTO struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	UserID     int64  `json:"user_id"`
	DatePosted string `json:"date_posted"`
}

func toArticleDTO(a *entity.Article) articleDTO {
	return articleDTO{
		ID:         a.ID,
		Title:      a.Title,
		Text:       a.Text,
		UserID:     a.UserID,
		DatePosted: a.DatePosted.UTC().Format(time.RFC3339),
	}
}

// toSummaryDTOs always yields a non-nil slice so empty pages encode as [].
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
