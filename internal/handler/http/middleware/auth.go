package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/user"
	"github.com/mannerishivardhan/workforce-backend-go/internal/handler/http/response"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests without a valid access token and stores the
// caller's Principal in the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			principal, err := jwt.PrincipalFromClaims(claims)
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(user.WithPrincipal(r.Context(), principal)))
		}
		return http.HandlerFunc(hfn)
	}
}
