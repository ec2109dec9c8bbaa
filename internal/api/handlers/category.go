package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/smarino-dev/tienda-api/internal/api/middleware"
	"github.com/smarino-dev/tienda-api/internal/models"
	service "github.com/smarino-dev/tienda-api/internal/services"
	"github.com/smarino-dev/tienda-api/internal/utils/response"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validator.Validate
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, validator: validator.New()}
}

func (h *CategoryHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CategoryRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), &req)
		if err != nil {
			logger.Warn("Category creation failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Category created", "categoryId", category.ID)
		response.WriteJson(w, http.StatusCreated, category)
	}
}

func (h *CategoryHandler) GetCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		category, err := h.categoryService.GetCategoryByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, category)
	}
}

func (h *CategoryHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch categories", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, categories)
	}
}

func (h *CategoryHandler) ListCategoryProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		products, err := h.categoryService.ListProductsByCategory(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, products)
	}
}

func (h *CategoryHandler) UpdateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req models.CategoryRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		category, err := h.categoryService.UpdateCategory(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Category update failed", "categoryId", id, "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Category renamed", "categoryId", id)
		response.WriteJson(w, http.StatusOK, category)
	}
}

func (h *CategoryHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		result, err := h.categoryService.DeleteCategory(r.Context(), id)
		if err != nil {
			logger.Warn("Category deletion failed", "categoryId", id, "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Category deleted", "categoryId", id)
		response.WriteJson(w, http.StatusOK, result)
	}
}
