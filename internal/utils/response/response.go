package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/smarino-dev/tienda-api/internal/errors"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(data)
}

// Error maps an AppError to its status code and a {message} body. Anything
// that is not an AppError answers 500 without leaking the cause.
func Error(w http.ResponseWriter, err error) {
	if appErr, ok := errors.IsAppError(err); ok {
		WriteJson(w, appErr.StatusCode, ErrorResponse{Message: appErr.Message})

		return
	}

	WriteJson(w, http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
}

// ValidationError flattens validator errors into one readable message.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	var msg string

	for i, err := range errs {
		if i > 0 {
			msg += "; "
		}

		switch err.Tag() {
		case "required":
			msg += fmt.Sprintf("Field %s is required", err.Field())
		case "email":
			msg += fmt.Sprintf("Field %s must be a valid email address", err.Field())
		case "min":
			msg += fmt.Sprintf("Field %s must be at least %s characters", err.Field(), err.Param())
		case "max":
			msg += fmt.Sprintf("Field %s must be at most %s characters", err.Field(), err.Param())
		case "url":
			msg += fmt.Sprintf("Field %s must be a valid URL", err.Field())
		case "gte":
			msg += fmt.Sprintf("Field %s must be at least %s", err.Field(), err.Param())
		default:
			msg += fmt.Sprintf("Field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param())
		}
	}

	WriteJson(w, http.StatusBadRequest, ErrorResponse{Message: msg})
}
