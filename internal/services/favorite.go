package service

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/smarino-dev/tienda-api/internal/errors"
	"github.com/smarino-dev/tienda-api/internal/models"
	repository "github.com/smarino-dev/tienda-api/internal/repositories"
)

type FavoriteService interface {
	AddFavorite(ctx context.Context, userID, productID int64) (*models.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, productID int64) (*models.DeleteResponse, error)
	GetFavorites(ctx context.Context, userID int64) ([]*models.Product, error)
}

type favoriteService struct {
	repo     repository.FavoriteRepository
	products repository.ProductRepository
}

func NewFavoriteService(repo repository.FavoriteRepository, products repository.ProductRepository) FavoriteService {
	return &favoriteService{repo: repo, products: products}
}

func (s *favoriteService) AddFavorite(ctx context.Context, userID, productID int64) (*models.Favorite, error) {
	if _, err := s.products.GetProductByID(ctx, productID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	favorite, err := s.repo.AddFavorite(ctx, userID, productID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to add favorite").WithError(err)
	}

	return favorite, nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, productID int64) (*models.DeleteResponse, error) {
	removed, err := s.repo.RemoveFavorite(ctx, userID, productID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to remove favorite").WithError(err)
	}

	return &models.DeleteResponse{Removed: removed}, nil
}

func (s *favoriteService) GetFavorites(ctx context.Context, userID int64) ([]*models.Product, error) {
	products, err := s.repo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch favorites").WithError(err)
	}

	return normalizeImages(products), nil
}
