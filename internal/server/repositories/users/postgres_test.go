package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/refugio/internal/common"
	"github.com/dmitrijs2005/refugio/internal/server/models"
)

const (
	insertQ   = `(?s)^INSERT\s+INTO\s+users\s*\(email,\s*salt,\s*verifier\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at$`
	byEmailQ  = `(?s)^SELECT\s+id,\s*email,\s*salt,\s*verifier,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`
	byIDQuery = `(?s)^SELECT\s+id,\s*email,\s*salt,\s*verifier,\s*created_at\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgresRepository(db), mock
}

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(insertQ).
		WithArgs("ana@example.com", []byte("salt"), []byte("verifier")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("42", now))

	got, err := repo.Create(context.Background(), &models.User{Email: "ana@example.com", Salt: []byte("salt"), Verifier: []byte("verifier")})
	require.NoError(t, err)
	require.Equal(t, "42", got.ID)
	require.Equal(t, now, got.CreatedAt)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQ).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.User{Email: "ana@example.com"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Email: "ana@example.com"})
	require.ErrorContains(t, err, "db error: db down")
}

func TestGetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(byEmailQ).
			WithArgs("ana@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "salt", "verifier", "created_at"}).
				AddRow("u-1", "ana@example.com", []byte("salt"), []byte("ver"), time.Now()))

		got, err := repo.GetByEmail(context.Background(), "ana@example.com")
		require.NoError(t, err)
		require.Equal(t, "u-1", got.ID)
		require.Equal(t, []byte("ver"), got.Verifier)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(byEmailQ).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmail(context.Background(), "ghost")
		require.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(byEmailQ).WithArgs("ana").WillReturnError(errors.New("db err"))

		_, err := repo.GetByEmail(context.Background(), "ana")
		require.ErrorContains(t, err, "db error: db err")
	})
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(byIDQuery).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "salt", "verifier", "created_at"}).
			AddRow("u-1", "ana@example.com", []byte("salt"), []byte("ver"), time.Now()))

	got, err := repo.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	require.Equal(t, "ana@example.com", got.Email)
}
