package middleware

import (
	"errors"
	"net/http"

	"github.com/fasthr/hr-backend-go/internal/domain/auth"
	"github.com/fasthr/hr-backend-go/internal/handler/http/response"
	"github.com/fasthr/hr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired turns the token verified by jwtauth.Verifier into a request Principal.
// The token's session must still be live and its user active.
func AuthRequired(jwtService jwt.Service, authService auth.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			claims, err := jwtService.ParseClaims(r.Context())
			if err != nil {
				if errors.Is(err, jwtauth.ErrNoTokenFound) {
					response.HandleError(w, auth.ErrUnauthenticated)
					return
				}
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			principal, err := authService.Authenticate(r.Context(), claims.UserID, claims.TokenID)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		}
		return http.HandlerFunc(hfn)
	}
}
