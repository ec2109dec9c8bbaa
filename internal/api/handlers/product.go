package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/smarino-dev/tienda-api/internal/api/middleware"
	"github.com/smarino-dev/tienda-api/internal/models"
	service "github.com/smarino-dev/tienda-api/internal/services"
	"github.com/smarino-dev/tienda-api/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := mustClaims(w, r)
		if !ok {
			return
		}

		var req models.ProductRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req, claims.UserID)
		if err != nil {
			logger.Error("Product creation failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Product created", "productId", product.ID)
		response.WriteJson(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := h.productService.ListProducts(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch products", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) ListMyProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustClaims(w, r)
		if !ok {
			return
		}

		products, err := h.productService.ListMyProducts(r.Context(), claims.UserID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch products", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := mustClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req models.ProductRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req, claims.UserID)
		if err != nil {
			logger.Warn("Product update rejected", "productId", id, "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Product updated", "productId", id)
		response.WriteJson(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := mustClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		result, err := h.productService.DeleteProduct(r.Context(), id, claims.UserID)
		if err != nil {
			logger.Warn("Product deletion rejected", "productId", id, "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Product deleted", "productId", id)
		response.WriteJson(w, http.StatusOK, result)
	}
}
