package repository_test

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/smarino-dev/tienda-api/internal/models"
	repository "github.com/smarino-dev/tienda-api/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserRepoTest(t *testing.T) (repository.UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewUserRepo(db), mock
}

func TestUserRepositoryCreateUser(t *testing.T) {
	repo, mock := setupUserRepoTest(t)
	ctx := t.Context()

	insertSQL := regexp.QuoteMeta(`
		INSERT INTO users (user_name, last_name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		user := &models.User{
			UserName: "Ana",
			LastName: "Martinez",
			Email:    "ana@example.com",
			Password: "$2a$10$hash",
			Role:     models.RoleClient,
		}

		mock.ExpectQuery(insertSQL).
			WithArgs(user.UserName, user.LastName, user.Email, user.Password, user.Role).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))

		err := repo.CreateUser(ctx, user)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepositoryGetUserByEmail(t *testing.T) {
	repo, mock := setupUserRepoTest(t)
	ctx := t.Context()

	selectSQL := regexp.QuoteMeta(`
		SELECT id, user_name, last_name, email, password, role, created_at
		FROM users
		WHERE email = $1`)

	t.Run("Success - Includes The Password Hash", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(selectSQL).
			WithArgs("ana@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "last_name", "email", "password", "role", "created_at"}).
				AddRow(3, "Ana", "Martinez", "ana@example.com", "$2a$10$hash", "client", now))

		user, err := repo.GetUserByEmail(ctx, "ana@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "$2a$10$hash", user.Password)
		assert.Equal(t, models.RoleClient, user.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unknown Email", func(t *testing.T) {
		mock.ExpectQuery(selectSQL).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByEmail(ctx, "nobody@example.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
