package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"pressbox/internal/domain/entity"
	"pressbox/internal/repository"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations, raised when a username is already taken.
const uniqueViolation = "23505"

type UserRepo struct {
	db Querier
}

func NewUserRepo(db Querier) repository.UserRepository {
	return &UserRepo{db: db}
}

// Create inserts the user and fills in the store-assigned ID and
// registration timestamp. A unique violation on the username surfaces as
// *entity.ConflictError; the constraint makes concurrent registrations of
// the same name resolve atomically in the store.
func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (username, password)
VALUES ($1, $2)
RETURNING id, date_registered`
	err := repo.db.QueryRowContext(ctx, query, user.Username, user.Password).
		Scan(&user.ID, &user.DateRegistered)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return &entity.ConflictError{Resource: "User"}
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT id, username, password, date_registered
FROM users
WHERE id = $1
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.Password, &user.DateRegistered)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	const query = `
SELECT id, username, password, date_registered
FROM users
WHERE username = $1
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Password, &user.DateRegistered)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByUsername: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) CountUsers(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return count, nil
}
