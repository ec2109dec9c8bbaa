package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/smarino-dev/tienda-api/internal/models"
	"github.com/smarino-dev/tienda-api/internal/utils"
)

type FavoriteRepository interface {
	// AddFavorite is idempotent: re-adding an existing pair returns the
	// existing row.
	AddFavorite(ctx context.Context, userID, productID int64) (*models.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, productID int64) (bool, error)
	ListFavorites(ctx context.Context, userID int64) ([]*models.Product, error)
}

type favoriteRepository struct {
	DB *sql.DB
}

func NewFavoriteRepo(db *sql.DB) FavoriteRepository {
	return &favoriteRepository{DB: db}
}

func (r *favoriteRepository) AddFavorite(ctx context.Context, userID, productID int64) (*models.Favorite, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	favorite := &models.Favorite{UserID: userID, ProductID: productID}

	insert := `
		INSERT INTO favorites (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING
		RETURNING id`

	err := r.DB.QueryRowContext(dbCtx, insert, userID, productID).Scan(&favorite.ID)
	if err == nil {
		return favorite, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// Conflict: the pair already exists, report the stored row.
	lookup := `SELECT id FROM favorites WHERE user_id = $1 AND product_id = $2`

	if err := r.DB.QueryRowContext(dbCtx, lookup, userID, productID).Scan(&favorite.ID); err != nil {
		return nil, err
	}

	return favorite, nil
}

func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID, productID int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM favorites WHERE user_id = $1 AND product_id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, userID, productID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *favoriteRepository) ListFavorites(ctx context.Context, userID int64) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + productColumns + `
		FROM products p
		INNER JOIN favorites f ON f.product_id = p.id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
