package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pressbox/internal/domain/entity"
	"pressbox/internal/repository"
)

type ArticleRepo struct {
	db Querier
}

func NewArticleRepo(db Querier) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles (user_id, title, text, date_posted)
VALUES ($1, $2, $3, $4)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.UserID, article.Title, article.Text, article.DatePosted,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, user_id, title, text, date_posted
FROM articles
WHERE id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.UserID, &article.Title, &article.Text, &article.DatePosted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       title = $1,
       text  = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, article.Title, article.Text, article.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("Update: article %d not found", article.ID)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Article, error) {
	const query = `
SELECT id, user_id, title, text, date_posted
FROM articles
ORDER BY date_posted DESC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanArticles(rows, limit)
}

func (repo *ArticleRepo) ListByUserPaginated(ctx context.Context, userID int64, offset, limit int) ([]*entity.Article, error) {
	const query = `
SELECT id, user_id, title, text, date_posted
FROM articles
WHERE user_id = $1
ORDER BY date_posted DESC
LIMIT $2 OFFSET $3`
	rows, err := repo.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListByUserPaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanArticles(rows, limit)
}

func (repo *ArticleRepo) CountArticles(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountArticles: %w", err)
	}
	return count, nil
}

func scanArticles(rows *sql.Rows, capacity int) ([]*entity.Article, error) {
	articles := make([]*entity.Article, 0, capacity)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.UserID, &article.Title,
			&article.Text, &article.DatePosted); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}
