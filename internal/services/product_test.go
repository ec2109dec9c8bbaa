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

func productRequest() *models.ProductRequest {
	return &models.ProductRequest{
		Name:        "Trail Runner",
		Description: "A lightweight trail running shoe.",
		Price:       89.99,
		Currency:    "usd",
		Stock:       12,
		ImageURL:    "https://example.com/shoe.jpg",
		Category:    "Shoes",
	}
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	ownerID := int64(7)

	t.Run("Success - Existing Category Matched By Name", func(t *testing.T) {
		mockRepo := repoMocks.NewMockProductRepository(t)
		mockCategories := repoMocks.NewMockCategoryRepository(t)
		productService := service.NewProductService(mockRepo, mockCategories)

		mockCategories.On("FindCategoryByName", ctx, "Shoes").
			Return(&models.Category{ID: 5, Name: "shoes"}, nil).Once()
		mockRepo.On("CreateProduct", ctx, mock.MatchedBy(func(p *models.Product) bool {
			return p.CategoryID == 5 && p.Currency == "USD" && p.UserID != nil && *p.UserID == ownerID
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Product).ID = 10
		}).Return(nil).Once()
		mockRepo.On("GetProductByID", ctx, int64(10)).
			Return(&models.Product{ID: 10, Name: "Trail Runner", CategoryID: 5, Category: "shoes"}, nil).Once()

		product, err := productService.CreateProduct(ctx, productRequest(), ownerID)

		assert.NoError(t, err)
		assert.Equal(t, int64(10), product.ID)
		assert.Equal(t, "shoes", product.Category)
	})

	t.Run("Success - Unknown Category Name Is Created", func(t *testing.T) {
		mockRepo := repoMocks.NewMockProductRepository(t)
		mockCategories := repoMocks.NewMockCategoryRepository(t)
		productService := service.NewProductService(mockRepo, mockCategories)

		mockCategories.On("FindCategoryByName", ctx, "Shoes").Return(nil, sql.ErrNoRows).Once()
		mockCategories.On("CreateCategory", ctx, mock.MatchedBy(func(c *models.Category) bool {
			return c.Name == "Shoes"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Category).ID = 9
		}).Return(nil).Once()
		mockRepo.On("CreateProduct", ctx, mock.MatchedBy(func(p *models.Product) bool {
			return p.CategoryID == 9
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Product).ID = 11
		}).Return(nil).Once()
		mockRepo.On("GetProductByID", ctx, int64(11)).
			Return(&models.Product{ID: 11, CategoryID: 9, Category: "Shoes"}, nil).Once()

		product, err := productService.CreateProduct(ctx, productRequest(), ownerID)

		assert.NoError(t, err)
		assert.Equal(t, int64(9), product.CategoryID)
	})

	t.Run("Success - Lost Create Race Falls Back To The Winner", func(t *testing.T) {
		mockRepo := repoMocks.NewMockProductRepository(t)
		mockCategories := repoMocks.NewMockCategoryRepository(t)
		productService := service.NewProductService(mockRepo, mockCategories)

		mockCategories.On("FindCategoryByName", ctx, "Shoes").Return(nil, sql.ErrNoRows).Once()
		mockCategories.On("CreateCategory", ctx, mock.Anything).Return(sql.ErrNoRows).Once()
		mockCategories.On("FindCategoryByName", ctx, "Shoes").
			Return(&models.Category{ID: 4, Name: "Shoes"}, nil).Once()
		mockRepo.On("CreateProduct", ctx, mock.MatchedBy(func(p *models.Product) bool {
			return p.CategoryID == 4
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Product).ID = 12
		}).Return(nil).Once()
		mockRepo.On("GetProductByID", ctx, int64(12)).
			Return(&models.Product{ID: 12, CategoryID: 4}, nil).Once()

		product, err := productService.CreateProduct(ctx, productRequest(), ownerID)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), product.CategoryID)
	})

	t.Run("Success - Category ID Takes Precedence Over Name", func(t *testing.T) {
		mockRepo := repoMocks.NewMockProductRepository(t)
		mockCategories := repoMocks.NewMockCategoryRepository(t)
		productService := service.NewProductService(mockRepo, mockCategories)

		req := productRequest()
		req.CategoryID = 3

		mockCategories.On("GetCategoryByID", ctx, int64(3)).
			Return(&models.Category{ID: 3, Name: "Boots"}, nil).Once()
		mockRepo.On("CreateProduct", ctx, mock.MatchedBy(func(p *models.Product) bool {
			return p.CategoryID == 3
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Product).ID = 13
		}).Return(nil).Once()
		mockRepo.On("GetProductByID", ctx, int64(13)).
			Return(&models.Product{ID: 13, CategoryID: 3}, nil).Once()

		_, err := productService.CreateProduct(ctx, req, ownerID)

		assert.NoError(t, err)
		mockCategories.AssertNotCalled(t, "FindCategoryByName", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unknown Category ID", func(t *testing.T) {
		mockRepo := repoMocks.NewMockProductRepository(t)
		mockCategories := repoMocks.NewMockCategoryRepository(t)
		productService := service.NewProductService(mockRepo, mockCategories)

		req := productRequest()
		req.CategoryID = 99

		mockCategories.On("GetCategoryByID", ctx, int64(99)).Return(nil, sql.ErrNoRows).Once()

		product, err := productService.CreateProduct(ctx, req, ownerID)

		assert.Nil(t, product)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Equal(t, "Category not found", appErr.Message)
	})

	t.Run("Failure - No Category Reference At All", func(t *testing.T) {
		mockRepo := repoMocks.NewMockProductRepository(t)
		mockCategories := repoMocks.NewMockCategoryRepository(t)
		productService := service.NewProductService(mockRepo, mockCategories)

		req := productRequest()
		req.Category = "   "

		product, err := productService.CreateProduct(ctx, req, ownerID)

		assert.Nil(t, product)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		mockRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	ownerID := int64(7)

	t.Run("Failure - Caller Is Not The Owner", func(t *testing.T) {
		mockRepo := repoMocks.NewMockProductRepository(t)
		mockCategories := repoMocks.NewMockCategoryRepository(t)
		productService := service.NewProductService(mockRepo, mockCategories)

		mockRepo.On("GetProductByID", ctx, int64(10)).
			Return(&models.Product{ID: 10, UserID: &ownerID}, nil).Once()

		product, err := productService.UpdateProduct(ctx, 10, productRequest(), 99)

		assert.Nil(t, product)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)
		mockRepo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Ownerless Product Is Not Mutable", func(t *testing.T) {
		mockRepo := repoMocks.NewMockProductRepository(t)
		mockCategories := repoMocks.NewMockCategoryRepository(t)
		productService := service.NewProductService(mockRepo, mockCategories)

		mockRepo.On("GetProductByID", ctx, int64(10)).
			Return(&models.Product{ID: 10, UserID: nil}, nil).Once()

		product, err := productService.UpdateProduct(ctx, 10, productRequest(), ownerID)

		assert.Nil(t, product)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)
	})

	t.Run("Failure - Product Not Found", func(t *testing.T) {
		mockRepo := repoMocks.NewMockProductRepository(t)
		mockCategories := repoMocks.NewMockCategoryRepository(t)
		productService := service.NewProductService(mockRepo, mockCategories)

		mockRepo.On("GetProductByID", ctx, int64(404)).Return(nil, sql.ErrNoRows).Once()

		product, err := productService.UpdateProduct(ctx, 404, productRequest(), ownerID)

		assert.Nil(t, product)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	ownerID := int64(7)

	t.Run("Success", func(t *testing.T) {
		mockRepo := repoMocks.NewMockProductRepository(t)
		mockCategories := repoMocks.NewMockCategoryRepository(t)
		productService := service.NewProductService(mockRepo, mockCategories)

		mockRepo.On("GetProductByID", ctx, int64(10)).
			Return(&models.Product{ID: 10, UserID: &ownerID}, nil).Once()
		mockRepo.On("DeleteProduct", ctx, int64(10)).Return(true, nil).Once()

		result, err := productService.DeleteProduct(ctx, 10, ownerID)

		assert.NoError(t, err)
		assert.True(t, result.Removed)
	})

	t.Run("Failure - Caller Is Not The Owner", func(t *testing.T) {
		mockRepo := repoMocks.NewMockProductRepository(t)
		mockCategories := repoMocks.NewMockCategoryRepository(t)
		productService := service.NewProductService(mockRepo, mockCategories)

		mockRepo.On("GetProductByID", ctx, int64(10)).
			Return(&models.Product{ID: 10, UserID: &ownerID}, nil).Once()

		result, err := productService.DeleteProduct(ctx, 10, 99)

		assert.Nil(t, result)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)
		mockRepo.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
	})
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Normalizes Image URLs", func(t *testing.T) {
		mockRepo := repoMocks.NewMockProductRepository(t)
		mockCategories := repoMocks.NewMockCategoryRepository(t)
		productService := service.NewProductService(mockRepo, mockCategories)

		mockRepo.On("ListProducts", ctx).Return([]*models.Product{
			{ID: 1, ImageURL: "photo-123?w=400"},
			{ID: 2, ImageURL: "https://example.com/b.jpg"},
		}, nil).Once()

		products, err := productService.ListProducts(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "https://images.unsplash.com/photo-123?w=400", products[0].ImageURL)
		assert.Equal(t, "https://example.com/b.jpg", products[1].ImageURL)
	})
}
