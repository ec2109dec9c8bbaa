package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/smarino-dev/tienda-api/internal/models"
	"github.com/smarino-dev/tienda-api/internal/utils"
)

type CartRepository interface {
	// UpsertItem inserts a cart row or atomically adds quantity to the
	// existing one. Item.Updated reports which branch was taken.
	UpsertItem(ctx context.Context, userID, productID, quantity int64) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, productID, quantity int64) (bool, error)
	DeleteItem(ctx context.Context, userID, productID int64) (bool, error)
	ListLines(ctx context.Context, userID int64) ([]*models.CartLine, error)
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) UpsertItem(ctx context.Context, userID, productID, quantity int64) (*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	// xmax is non-zero only for the DO UPDATE branch, which is how the merge
	// is distinguished from a fresh insert in a single round trip.
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, quantity, (xmax <> 0) AS updated`

	item := &models.CartItem{UserID: userID, ProductID: productID}

	err := r.DB.QueryRowContext(dbCtx, query, userID, productID, quantity).
		Scan(&item.ID, &item.Quantity, &item.Updated)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert cart item: %w", err)
	}

	return item, nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, productID, quantity int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE cart_items SET quantity = $1 WHERE user_id = $2 AND product_id = $3`

	result, err := r.DB.ExecContext(dbCtx, query, quantity, userID, productID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, userID, productID int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`

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

func (r *cartRepository) ListLines(ctx context.Context, userID int64) ([]*models.CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, p.name, p.price, p.currency, p.stock, p.image_url
		FROM cart_items ci
		INNER JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	lines := []*models.CartLine{}

	for rows.Next() {
		line := &models.CartLine{}

		err := rows.Scan(&line.ID, &line.UserID, &line.ProductID, &line.Quantity,
			&line.Name, &line.Price, &line.Currency, &line.Stock, &line.ImageURL)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
