package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/smarino-dev/tienda-api/internal/api/middleware"
	"github.com/smarino-dev/tienda-api/internal/models"
	service "github.com/smarino-dev/tienda-api/internal/services"
	"github.com/smarino-dev/tienda-api/internal/utils/response"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		result, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Error("Registration failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("User registered")
		response.WriteJson(w, http.StatusCreated, result)
	}
}

func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		result, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("User logged in")
		response.WriteJson(w, http.StatusOK, result)
	}
}
