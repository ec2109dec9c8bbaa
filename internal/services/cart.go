package service

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/smarino-dev/tienda-api/internal/errors"
	"github.com/smarino-dev/tienda-api/internal/models"
	repository "github.com/smarino-dev/tienda-api/internal/repositories"
	"github.com/smarino-dev/tienda-api/internal/utils"
)

type CartService interface {
	AddToCart(ctx context.Context, userID, productID, quantity int64) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, productID, quantity int64) (*models.UpdateQuantityResponse, error)
	RemoveFromCart(ctx context.Context, userID, productID int64) (*models.DeleteResponse, error)
	GetCart(ctx context.Context, userID int64) ([]*models.CartLine, error)
}

type cartService struct {
	repo     repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(repo repository.CartRepository, products repository.ProductRepository) CartService {
	return &cartService{repo: repo, products: products}
}

func (s *cartService) AddToCart(ctx context.Context, userID, productID, quantity int64) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	if err := s.checkProductExists(ctx, productID); err != nil {
		return nil, err
	}

	item, err := s.repo.UpsertItem(ctx, userID, productID, quantity)
	if err != nil {
		return nil, errors.DatabaseError("Failed to add to cart").WithError(err)
	}

	return item, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID, quantity int64) (*models.UpdateQuantityResponse, error) {
	// Below one, the line is removed rather than stored with a non-positive
	// quantity.
	if quantity < 1 {
		if _, err := s.repo.DeleteItem(ctx, userID, productID); err != nil {
			return nil, errors.DatabaseError("Failed to remove cart item").WithError(err)
		}

		return &models.UpdateQuantityResponse{Removed: true}, nil
	}

	updated, err := s.repo.UpdateQuantity(ctx, userID, productID, quantity)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update cart item").WithError(err)
	}

	return &models.UpdateQuantityResponse{Updated: updated, Quantity: quantity}, nil
}

func (s *cartService) RemoveFromCart(ctx context.Context, userID, productID int64) (*models.DeleteResponse, error) {
	// Removing an absent line is a no-op success, not an error.
	removed, err := s.repo.DeleteItem(ctx, userID, productID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to remove cart item").WithError(err)
	}

	return &models.DeleteResponse{Removed: removed}, nil
}

func (s *cartService) GetCart(ctx context.Context, userID int64) ([]*models.CartLine, error) {
	lines, err := s.repo.ListLines(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	for _, line := range lines {
		line.ImageURL = utils.NormalizeImageURL(line.ImageURL)
	}

	return lines, nil
}

func (s *cartService) checkProductExists(ctx context.Context, productID int64) error {
	if _, err := s.products.GetProductByID(ctx, productID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Product not found").WithError(err)
		}

		return errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return nil
}
