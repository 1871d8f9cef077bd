package middleware

import (
	"fmt"
	"net/http"

	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/user"
	"github.com/mannerishivardhan/workforce-backend-go/internal/handler/http/response"
)

// RequirePermission checks if the caller's role grants a capability
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return RequireAnyPermission(permission)
}

// RequireAnyPermission passes when the caller's role grants at least one of
// the capabilities. Scope checks (own record, own department) stay in the
// services.
func RequireAnyPermission(permissions ...user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := user.PrincipalFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Missing access token")
				return
			}

			for _, p := range permissions {
				if principal.Can(p) {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permissions[0], principal.Role))
		})
	}
}
