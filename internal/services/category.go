package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/smarino-dev/tienda-api/internal/errors"
	"github.com/smarino-dev/tienda-api/internal/models"
	repository "github.com/smarino-dev/tienda-api/internal/repositories"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]*models.Product, error)
	UpdateCategory(ctx context.Context, id int64, req *models.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) (*models.DeleteResponse, error)
}

type categoryService struct {
	repo     repository.CategoryRepository
	products repository.ProductRepository
}

func NewCategoryService(repo repository.CategoryRepository, products repository.ProductRepository) CategoryService {
	return &categoryService{repo: repo, products: products}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, error) {
	category := &models.Category{Name: strings.TrimSpace(req.Name)}

	err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		// No row back from ON CONFLICT DO NOTHING means the name is taken.
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.DuplicateEntryError("Category already exists")
		}

		return nil, errors.DatabaseError("Failed to create category").WithError(err)
	}

	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Category not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch category").WithError(err)
	}

	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}

func (s *categoryService) ListProductsByCategory(ctx context.Context, categoryID int64) ([]*models.Product, error) {
	products, err := s.products.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return normalizeImages(products), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req *models.CategoryRequest) (*models.Category, error) {
	updated, err := s.repo.UpdateCategory(ctx, id, strings.TrimSpace(req.Name))
	if err != nil {
		return nil, errors.DatabaseError("Failed to update category").WithError(err)
	}

	if !updated {
		return nil, errors.NotFoundError("Category not found")
	}

	return s.GetCategoryByID(ctx, id)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) (*models.DeleteResponse, error) {
	// Products keep their category_id; orphaned references are tolerated.
	removed, err := s.repo.DeleteCategory(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to delete category").WithError(err)
	}

	if !removed {
		return nil, errors.NotFoundError("Category not found")
	}

	return &models.DeleteResponse{Removed: true}, nil
}
