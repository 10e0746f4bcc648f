package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"pressbox/internal/domain/entity"
	pg "pressbox/internal/infra/adapter/persistence/postgres"
)

func userRow(users ...*entity.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "username", "password", "date_registered"})
	for _, u := range users {
		rows.AddRow(u.ID, u.Username, u.Password, u.DateRegistered)
	}
	return rows
}

/* ───────── Create ───────── */

func TestUserRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	registered := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "Str0ng!Pass").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date_registered"}).
			AddRow(int64(1), registered))

	repo := pg.NewUserRepo(db)
	u := &entity.User{Username: "alice", Password: "Str0ng!Pass"}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if u.ID != 1 || !u.DateRegistered.Equal(registered) {
		t.Fatalf("user after create=%+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_Create_DuplicateUsername(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "Str0ng!Pass").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	repo := pg.NewUserRepo(db)
	err := repo.Create(context.Background(), &entity.User{Username: "alice", Password: "Str0ng!Pass"})

	var conflict *entity.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err=%v, want ConflictError", err)
	}
	if conflict.Error() != "User with such name already exists" {
		t.Fatalf("message=%q", conflict.Error())
	}
}

/* ───────── Get / GetByUsername ───────── */

func TestUserRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	registered := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	want := &entity.User{ID: 5, Username: "alice", Password: "Str0ng!Pass", DateRegistered: registered}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(userRow(want))

	repo := pg.NewUserRepo(db)
	got, err := repo.Get(context.Background(), 5)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUserRepo_Get_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM users").
		WithArgs(int64(99)).
		WillReturnRows(userRow())

	repo := pg.NewUserRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil || got != nil {
		t.Fatalf("got=%+v err=%v, want nil/nil", got, err)
	}
}

func TestUserRepo_GetByUsername(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	registered := time.Now()
	want := &entity.User{ID: 5, Username: "alice", Password: "Str0ng!Pass", DateRegistered: registered}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE username = $1")).
		WithArgs("alice").
		WillReturnRows(userRow(want))

	repo := pg.NewUserRepo(db)
	got, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUserRepo_GetByUsername_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM users").
		WithArgs("nobody").
		WillReturnRows(userRow())

	repo := pg.NewUserRepo(db)
	got, err := repo.GetByUsername(context.Background(), "nobody")
	if err != nil || got != nil {
		t.Fatalf("got=%+v err=%v, want nil/nil", got, err)
	}
}

/* ───────── count ───────── */

func TestUserRepo_CountUsers(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	repo := pg.NewUserRepo(db)
	n, err := repo.CountUsers(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("CountUsers n=%d err=%v", n, err)
	}
}
