package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/smarino-dev/tienda-api/internal/api/middleware"
	apperrors "github.com/smarino-dev/tienda-api/internal/errors"
	"github.com/smarino-dev/tienda-api/internal/models"
	"github.com/smarino-dev/tienda-api/internal/utils"
	"github.com/smarino-dev/tienda-api/internal/utils/response"
)

// decodeAndValidate parses the JSON body into dest and runs struct
// validation, answering 400 itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, validate *validator.Validate, dest any) bool {
	if err := utils.DecodeJSONBody(r, dest); err != nil {
		middleware.LoggerFromContext(r.Context()).Warn("Invalid request body", "error", err.Error())
		response.Error(w, apperrors.BadRequestError(err.Error()))

		return false
	}

	if err := utils.ValidateStruct(validate, dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
		} else {
			response.Error(w, apperrors.ValidationError(err.Error()))
		}

		return false
	}

	return true
}

// pathID parses the named path value as a positive integer id.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id < 1 {
		response.Error(w, apperrors.BadRequestError("Invalid "+name))

		return 0, false
	}

	return id, true
}

// mustClaims returns the authenticated identity; routes using it are always
// behind Authenticate, so a miss is a wiring bug answered with 401.
func mustClaims(w http.ResponseWriter, r *http.Request) (*models.Claims, bool) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		response.Error(w, apperrors.UnauthorizedError("Authentication required"))

		return nil, false
	}

	return claims, true
}
