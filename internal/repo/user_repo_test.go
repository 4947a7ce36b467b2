package repo_test

import (
	"context"
	"testing"
	"time"

	dom "github.com/vijitdua/TaskUp/internal/domain"
	"github.com/vijitdua/TaskUp/internal/repo"
	"github.com/vijitdua/TaskUp/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "username", "first_name", "last_name", "password_hash", "token", "created_at"}

func TestPGUserRepo_GetByUsername(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, username, first_name, last_name, password_hash, token, created_at\s+FROM users WHERE username = \$1`).
			WithArgs("ada").
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow("u1", "ada", "Ada", "Lovelace", "$2a$10$hash", "feedbeef", now))

		r := repo.NewPGUserRepo(mock)
		u, err := r.GetByUsername(ctx, "ada")
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
		assert.Equal(t, "Ada", u.FirstName)
		assert.Equal(t, "Lovelace", u.LastName)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent user surfaces pgx.ErrNoRows", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, username, first_name, last_name, password_hash, token, created_at\s+FROM users WHERE username = \$1`).
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		r := repo.NewPGUserRepo(mock)
		_, err = r.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, pgx.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPGUserRepo_GetByToken(t *testing.T) {
	ctx := context.Background()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, username, first_name, last_name, password_hash, token, created_at\s+FROM users WHERE token = \$1`).
		WithArgs("tok").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow("u1", "ada", "Ada", "Lovelace", "$2a$10$hash", "tok", time.Now()))

	r := repo.NewPGUserRepo(mock)
	u, err := r.GetByToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "ada", u.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGUserRepo_Create(t *testing.T) {
	ctx := context.Background()
	user := dom.User{
		ID:           "u1",
		Username:     "ada",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PasswordHash: "$2a$10$hash",
		Token:        "tok",
	}

	t.Run("inserted", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("u1", "ada", "Ada", "Lovelace", "$2a$10$hash", "tok").
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow("u1", "ada", "Ada", "Lovelace", "$2a$10$hash", "tok", time.Now()))

		r := repo.NewPGUserRepo(mock)
		created, err := r.Create(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, "u1", created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username surfaces a unique violation", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("u1", "ada", "Ada", "Lovelace", "$2a$10$hash", "tok").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		r := repo.NewPGUserRepo(mock)
		_, err = r.Create(ctx, user)
		require.Error(t, err)
		assert.True(t, utils.IsPGUniqueViolation(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
