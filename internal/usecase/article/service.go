// Package article provides use cases for managing articles: creation,
// retrieval, paginated listing, and ownership-gated mutation.
package article

import (
	"context"
	"fmt"
	"time"

	"pressbox/internal/common/pagination"
	"pressbox/internal/domain/entity"
	"pressbox/internal/repository"
	"pressbox/internal/service/auth"
)

// Service provides article management use cases. Mutations run their
// checks in a fixed order: existence, then ownership, then field
// validation; the first failure is terminal. Existence is checked before
// ownership on purpose, so a missing article always reports not found.
type Service struct {
	Repo  repository.ArticleRepository
	Pages pagination.Config
}

// Create persists a new article owned by ownerID with a server-assigned
// posting timestamp. Both title and text are required; a missing field
// fails with *entity.ValidationError naming it.
func (s *Service) Create(ctx context.Context, ownerID int64, title, text string) (*entity.Article, error) {
	if err := validateFields(title, text); err != nil {
		return nil, err
	}

	art := &entity.Article{
		UserID:     ownerID,
		Title:      title,
		Text:       text,
		DatePosted: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Get retrieves a single article by its ID.
// Returns *entity.NotFoundError if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, &entity.NotFoundError{Resource: "Article", ID: id}
	}
	return art, nil
}

// List retrieves one page of articles ordered by posting date descending.
// Pages are 1-based with the fixed process-wide page size; a page beyond
// the available data yields an empty slice, never an error.
func (s *Service) List(ctx context.Context, page int) ([]*entity.Article, error) {
	offset := pagination.CalculateOffset(page, s.Pages.PageSize)
	articles, err := s.Repo.ListPaginated(ctx, offset, s.Pages.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ListByUser retrieves one page of a single user's articles with the same
// pagination semantics as List. The caller is responsible for resolving
// the user first; an unknown user id simply yields an empty page here.
func (s *Service) ListByUser(ctx context.Context, userID int64, page int) ([]*entity.Article, error) {
	offset := pagination.CalculateOffset(page, s.Pages.PageSize)
	articles, err := s.Repo.ListByUserPaginated(ctx, userID, offset, s.Pages.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list articles by user: %w", err)
	}
	return articles, nil
}

// Update rewrites an article's title and text on behalf of user.
// Check order: existence (*entity.NotFoundError), ownership
// (*entity.ForbiddenError), field validation (*entity.ValidationError).
// Returns the updated article.
func (s *Service) Update(ctx context.Context, user *entity.User, id int64, title, text string) (*entity.Article, error) {
	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, &entity.NotFoundError{Resource: "Article", ID: id}
	}

	if err := auth.Authorize(user, art.UserID, auth.ActionEdit); err != nil {
		return nil, err
	}

	if err := validateFields(title, text); err != nil {
		return nil, err
	}

	art.Title = title
	art.Text = text
	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete removes an article on behalf of user, with the same existence and
// ownership ordering as Update. Returns the deleted record's last state.
func (s *Service) Delete(ctx context.Context, user *entity.User, id int64) (*entity.Article, error) {
	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, &entity.NotFoundError{Resource: "Article", ID: id}
	}

	if err := auth.Authorize(user, art.UserID, auth.ActionDelete); err != nil {
		return nil, err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete article: %w", err)
	}
	return art, nil
}

func validateFields(title, text string) error {
	if title == "" {
		return &entity.ValidationError{Field: "Article title", Message: "is missing"}
	}
	if text == "" {
		return &entity.ValidationError{Field: "Article text", Message: "is missing"}
	}
	return nil
}
