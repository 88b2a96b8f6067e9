package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "github.com/Dias221467/Animal_Rescue/pkg/jwt"
	"github.com/sirupsen/logrus"
)

type contextKey string

const ngoContextKey contextKey = "ngo"

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header and stores the claims in the request context.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if header == "" || token == "" || token == header {
				http.Error(w, "Access denied", http.StatusUnauthorized)
				return
			}

			claims, err := jwtutil.ValidateToken(token, secret)
			if err != nil {
				logrus.WithError(err).Warn("Rejected request with invalid token")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ngoContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetNGOFromContext returns the claims stored by AuthMiddleware, or nil.
func GetNGOFromContext(ctx context.Context) *jwtutil.Claims {
	claims, _ := ctx.Value(ngoContextKey).(*jwtutil.Claims)
	return claims
}
