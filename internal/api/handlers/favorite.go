package handlers

import (
	"net/http"

	"github.com/smarino-dev/tienda-api/internal/api/middleware"
	service "github.com/smarino-dev/tienda-api/internal/services"
	"github.com/smarino-dev/tienda-api/internal/utils/response"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) GetFavorites() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustClaims(w, r)
		if !ok {
			return
		}

		products, err := h.favoriteService.GetFavorites(r.Context(), claims.UserID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch favorites", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, products)
	}
}

func (h *FavoriteHandler) AddFavorite() http.HandlerFunc {
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

		favorite, err := h.favoriteService.AddFavorite(r.Context(), claims.UserID, productID)
		if err != nil {
			logger.Warn("Add favorite failed", "productId", productID, "error", err.Error())
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusCreated, favorite)
	}
}

func (h *FavoriteHandler) RemoveFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustClaims(w, r)
		if !ok {
			return
		}

		productID, ok := pathID(w, r, "productId")
		if !ok {
			return
		}

		result, err := h.favoriteService.RemoveFavorite(r.Context(), claims.UserID, productID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Remove favorite failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, result)
	}
}
