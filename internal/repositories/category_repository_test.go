package repository_test

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/smarino-dev/tienda-api/internal/models"
	repository "github.com/smarino-dev/tienda-api/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCategoryRepoTest(t *testing.T) (repository.CategoryRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewCategoryRepo(db), mock
}

func TestCategoryRepositoryCreateCategory(t *testing.T) {
	repo, mock := setupCategoryRepoTest(t)
	ctx := t.Context()

	insertSQL := regexp.QuoteMeta(`
		INSERT INTO categories (name)
		VALUES ($1)
		ON CONFLICT DO NOTHING
		RETURNING id`)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(insertSQL).
			WithArgs("Shoes").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		category := &models.Category{Name: "Shoes"}
		err := repo.CreateCategory(ctx, category)

		assert.NoError(t, err)
		assert.Equal(t, int64(5), category.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Conflicting Name Returns No Row", func(t *testing.T) {
		mock.ExpectQuery(insertSQL).
			WithArgs("Shoes").
			WillReturnError(sql.ErrNoRows)

		err := repo.CreateCategory(ctx, &models.Category{Name: "Shoes"})

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryRepositoryFindCategoryByName(t *testing.T) {
	repo, mock := setupCategoryRepoTest(t)
	ctx := t.Context()

	findSQL := regexp.QuoteMeta(`SELECT id, name FROM categories WHERE LOWER(TRIM(name)) = LOWER(TRIM($1))`)

	t.Run("Success - Case-Insensitive Match", func(t *testing.T) {
		mock.ExpectQuery(findSQL).
			WithArgs(" SHOES ").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "shoes"))

		category, err := repo.FindCategoryByName(ctx, " SHOES ")

		assert.NoError(t, err)
		assert.Equal(t, int64(5), category.ID)
		assert.Equal(t, "shoes", category.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Miss Returns ErrNoRows", func(t *testing.T) {
		mock.ExpectQuery(findSQL).
			WithArgs("Hats").
			WillReturnError(sql.ErrNoRows)

		category, err := repo.FindCategoryByName(ctx, "Hats")

		assert.Nil(t, category)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryRepositoryListCategories(t *testing.T) {
	repo, mock := setupCategoryRepoTest(t)
	ctx := t.Context()

	listSQL := regexp.QuoteMeta(`
		SELECT c.id, c.name, COUNT(p.id) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.id`)

	t.Run("Success - Carries Product Counts", func(t *testing.T) {
		mock.ExpectQuery(listSQL).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "product_count"}).
				AddRow(1, "shoes", 4).
				AddRow(2, "hats", 0))

		categories, err := repo.ListCategories(ctx)

		assert.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, int64(4), categories[0].ProductCount)
		assert.Equal(t, int64(0), categories[1].ProductCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryRepositoryUpdateCategory(t *testing.T) {
	repo, mock := setupCategoryRepoTest(t)
	ctx := t.Context()

	updateSQL := regexp.QuoteMeta(`UPDATE categories SET name = $1 WHERE id = $2`)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(updateSQL).
			WithArgs("Footwear", int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		updated, err := repo.UpdateCategory(ctx, 5, "Footwear")

		assert.NoError(t, err)
		assert.True(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No Matching Row", func(t *testing.T) {
		mock.ExpectExec(updateSQL).
			WithArgs("Footwear", int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		updated, err := repo.UpdateCategory(ctx, 99, "Footwear")

		assert.NoError(t, err)
		assert.False(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
