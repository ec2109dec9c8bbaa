package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/smarino-dev/tienda-api/internal/errors"
	"github.com/smarino-dev/tienda-api/internal/models"
	repository "github.com/smarino-dev/tienda-api/internal/repositories"
	"github.com/smarino-dev/tienda-api/internal/utils"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.ProductRequest, ownerID int64) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	ListMyProducts(ctx context.Context, userID int64) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.ProductRequest, callerID int64) (*models.Product, error)
	DeleteProduct(ctx context.Context, id, callerID int64) (*models.DeleteResponse, error)
}

type productService struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	sanitizer  *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository, categories repository.CategoryRepository) ProductService {
	return &productService{
		repo:       repo,
		categories: categories,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.ProductRequest, ownerID int64) (*models.Product, error) {
	categoryID, err := s.resolveCategory(ctx, req)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        s.sanitizer.Sanitize(strings.TrimSpace(req.Name)),
		Description: s.sanitizer.Sanitize(req.Description),
		Price:       req.Price,
		Currency:    strings.ToUpper(strings.TrimSpace(req.Currency)),
		Stock:       req.Stock,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		CategoryID:  categoryID,
		UserID:      &ownerID,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	// Re-read so the response carries the joined category name.
	return s.GetProductByID(ctx, product.ID)
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	product.ImageURL = utils.NormalizeImageURL(product.ImageURL)

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return normalizeImages(products), nil
}

func (s *productService) ListMyProducts(ctx context.Context, userID int64) ([]*models.Product, error) {
	products, err := s.repo.ListProductsByUser(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return normalizeImages(products), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.ProductRequest, callerID int64) (*models.Product, error) {
	existing, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(existing, callerID); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(ctx, req)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          id,
		Name:        s.sanitizer.Sanitize(strings.TrimSpace(req.Name)),
		Description: s.sanitizer.Sanitize(req.Description),
		Price:       req.Price,
		Currency:    strings.ToUpper(strings.TrimSpace(req.Currency)),
		Stock:       req.Stock,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		CategoryID:  categoryID,
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	return s.GetProductByID(ctx, id)
}

func (s *productService) DeleteProduct(ctx context.Context, id, callerID int64) (*models.DeleteResponse, error) {
	existing, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(existing, callerID); err != nil {
		return nil, err
	}

	removed, err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to delete product").WithError(err)
	}

	return &models.DeleteResponse{Removed: removed}, nil
}

// requireOwner gates product mutation on the stored user_id. Ownerless rows
// (seeded data) are not mutable through the API.
func requireOwner(product *models.Product, callerID int64) error {
	if product.UserID == nil || *product.UserID != callerID {
		return errors.ForbiddenError("Only the owner can modify this product")
	}

	return nil
}

// resolveCategory maps the request's category reference to a category id.
// A numeric id must exist; a free-text name is matched case-insensitively on
// the trimmed value and created on a miss.
func (s *productService) resolveCategory(ctx context.Context, req *models.ProductRequest) (int64, error) {
	if req.CategoryID > 0 {
		category, err := s.categories.GetCategoryByID(ctx, req.CategoryID)
		if err != nil {
			if stderrors.Is(err, sql.ErrNoRows) {
				return 0, errors.ValidationError("Category not found")
			}

			return 0, errors.DatabaseError("Failed to resolve category").WithError(err)
		}

		return category.ID, nil
	}

	name := strings.TrimSpace(req.Category)
	if name == "" {
		return 0, errors.ValidationError("Either category or category_id is required")
	}

	name = s.sanitizer.Sanitize(name)

	category, err := s.categories.FindCategoryByName(ctx, name)
	if err == nil {
		return category.ID, nil
	}

	if !stderrors.Is(err, sql.ErrNoRows) {
		return 0, errors.DatabaseError("Failed to resolve category").WithError(err)
	}

	created := &models.Category{Name: name}

	err = s.categories.CreateCategory(ctx, created)
	if err == nil {
		return created.ID, nil
	}

	if !stderrors.Is(err, sql.ErrNoRows) {
		return 0, errors.DatabaseError("Failed to create category").WithError(err)
	}

	// Lost a concurrent create of the same name; the winner's row is there now.
	category, err = s.categories.FindCategoryByName(ctx, name)
	if err != nil {
		return 0, errors.DatabaseError("Failed to resolve category").WithError(err)
	}

	return category.ID, nil
}

func normalizeImages(products []*models.Product) []*models.Product {
	for _, product := range products {
		product.ImageURL = utils.NormalizeImageURL(product.ImageURL)
	}

	return products
}
