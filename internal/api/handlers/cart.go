package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/smarino-dev/tienda-api/internal/api/middleware"
	"github.com/smarino-dev/tienda-api/internal/models"
	service "github.com/smarino-dev/tienda-api/internal/services"
	"github.com/smarino-dev/tienda-api/internal/utils"
	"github.com/smarino-dev/tienda-api/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustClaims(w, r)
		if !ok {
			return
		}

		lines, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch cart", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, lines)
	}
}

func (h *CartHandler) AddToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := mustClaims(w, r)
		if !ok {
			return
		}

		productID, ok := pathID(w, r, "productId")
		if !ok {
			return
		}

		// An empty body means quantity 1.
		var req models.AddToCartRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			req.Quantity = 1
		}

		item, err := h.cartService.AddToCart(r.Context(), claims.UserID, productID, req.Quantity)
		if err != nil {
			logger.Warn("Add to cart failed", "productId", productID, "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Cart item added", "productId", productID, "quantity", item.Quantity)
		response.WriteJson(w, http.StatusOK, item)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := mustClaims(w, r)
		if !ok {
			return
		}

		productID, ok := pathID(w, r, "productId")
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		result, err := h.cartService.UpdateQuantity(r.Context(), claims.UserID, productID, req.Quantity)
		if err != nil {
			logger.Warn("Cart update failed", "productId", productID, "error", err.Error())
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, result)
	}
}

func (h *CartHandler) RemoveFromCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustClaims(w, r)
		if !ok {
			return
		}

		productID, ok := pathID(w, r, "productId")
		if !ok {
			return
		}

		result, err := h.cartService.RemoveFromCart(r.Context(), claims.UserID, productID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Cart removal failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, result)
	}
}
