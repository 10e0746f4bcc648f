package repository

import (
	"context"

	"pressbox/internal/domain/entity"
)

// ArticleRepository provides access to stored articles.
type ArticleRepository interface {
	// Create persists a new article and assigns its ID.
	Create(ctx context.Context, article *entity.Article) error
	// Get retrieves an article by ID. Returns (nil, nil) if no article matches.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// Update rewrites the title and text of an existing article.
	// The owner and posting timestamp are immutable.
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes an article by ID.
	Delete(ctx context.Context, id int64) error
	// ListPaginated retrieves articles ordered by date_posted DESC.
	// Uses LIMIT and OFFSET; an offset past the end yields an empty slice.
	ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Article, error)
	// ListByUserPaginated retrieves one user's articles ordered by
	// date_posted DESC, with the same pagination semantics as ListPaginated.
	ListByUserPaginated(ctx context.Context, userID int64, offset, limit int) ([]*entity.Article, error)
	// CountArticles returns the total number of articles.
	CountArticles(ctx context.Context) (int64, error)
}
