package service_test

import (
	"context"
	"database/sql"
	"testing"

	appErrors "github.com/smarino-dev/tienda-api/internal/errors"
	"github.com/smarino-dev/tienda-api/internal/models"
	repoMocks "github.com/smarino-dev/tienda-api/internal/repositories/mocks"
	service "github.com/smarino-dev/tienda-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAddFavorite(t *testing.T) {
	ctx := context.Background()
	userID := int64(7)
	productID := int64(42)

	t.Run("Success", func(t *testing.T) {
		mockRepo := repoMocks.NewMockFavoriteRepository(t)
		mockProducts := repoMocks.NewMockProductRepository(t)
		favoriteService := service.NewFavoriteService(mockRepo, mockProducts)

		mockProducts.On("GetProductByID", ctx, productID).Return(&models.Product{ID: productID}, nil).Once()
		mockRepo.On("AddFavorite", ctx, userID, productID).
			Return(&models.Favorite{ID: 1, UserID: userID, ProductID: productID}, nil).Once()

		favorite, err := favoriteService.AddFavorite(ctx, userID, productID)

		assert.NoError(t, err)
		assert.Equal(t, productID, favorite.ProductID)
	})

	t.Run("Success - Re-Adding Returns The Existing Entry", func(t *testing.T) {
		mockRepo := repoMocks.NewMockFavoriteRepository(t)
		mockProducts := repoMocks.NewMockProductRepository(t)
		favoriteService := service.NewFavoriteService(mockRepo, mockProducts)

		existing := &models.Favorite{ID: 1, UserID: userID, ProductID: productID}
		mockProducts.On("GetProductByID", ctx, productID).Return(&models.Product{ID: productID}, nil).Twice()
		mockRepo.On("AddFavorite", ctx, userID, productID).Return(existing, nil).Twice()

		first, err := favoriteService.AddFavorite(ctx, userID, productID)
		assert.NoError(t, err)

		second, err := favoriteService.AddFavorite(ctx, userID, productID)
		assert.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("Failure - Product Not Found", func(t *testing.T) {
		mockRepo := repoMocks.NewMockFavoriteRepository(t)
		mockProducts := repoMocks.NewMockProductRepository(t)
		favoriteService := service.NewFavoriteService(mockRepo, mockProducts)

		mockProducts.On("GetProductByID", ctx, productID).Return(nil, sql.ErrNoRows).Once()

		favorite, err := favoriteService.AddFavorite(ctx, userID, productID)

		assert.Nil(t, favorite)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRemoveFavorite(t *testing.T) {
	ctx := context.Background()
	userID := int64(7)
	productID := int64(42)

	t.Run("Success", func(t *testing.T) {
		mockRepo := repoMocks.NewMockFavoriteRepository(t)
		favoriteService := service.NewFavoriteService(mockRepo, repoMocks.NewMockProductRepository(t))

		mockRepo.On("RemoveFavorite", ctx, userID, productID).Return(true, nil).Once()

		result, err := favoriteService.RemoveFavorite(ctx, userID, productID)

		assert.NoError(t, err)
		assert.True(t, result.Removed)
	})

	t.Run("Success - Removing An Absent Favorite Is Not An Error", func(t *testing.T) {
		mockRepo := repoMocks.NewMockFavoriteRepository(t)
		favoriteService := service.NewFavoriteService(mockRepo, repoMocks.NewMockProductRepository(t))

		mockRepo.On("RemoveFavorite", ctx, userID, productID).Return(false, nil).Once()

		result, err := favoriteService.RemoveFavorite(ctx, userID, productID)

		assert.NoError(t, err)
		assert.False(t, result.Removed)
	})
}

func TestGetFavorites(t *testing.T) {
	ctx := context.Background()
	userID := int64(7)

	t.Run("Success - Normalizes Image URLs", func(t *testing.T) {
		mockRepo := repoMocks.NewMockFavoriteRepository(t)
		favoriteService := service.NewFavoriteService(mockRepo, repoMocks.NewMockProductRepository(t))

		mockRepo.On("ListFavorites", ctx, userID).Return([]*models.Product{
			{ID: 1, ImageURL: "photo-9?w=200"},
		}, nil).Once()

		products, err := favoriteService.GetFavorites(ctx, userID)

		assert.NoError(t, err)
		assert.Equal(t, "https://images.unsplash.com/photo-9?w=200", products[0].ImageURL)
	})
}
