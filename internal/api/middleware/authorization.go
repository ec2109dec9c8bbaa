package middleware

import (
	"net/http"

	"github.com/smarino-dev/tienda-api/internal/errors"
	"github.com/smarino-dev/tienda-api/internal/models"
	"github.com/smarino-dev/tienda-api/internal/utils/response"
)

// RequireAdmin gates a route on the admin role. It must run after
// Authenticate.
func RequireAdmin(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || claims.Role != models.RoleAdmin {
			LoggerFromContext(r.Context()).Warn("Non-admin user attempted an admin endpoint")
			response.Error(w, errors.ForbiddenError("Insufficient permissions"))

			return
		}

		next.ServeHTTP(w, r)
	}
}
