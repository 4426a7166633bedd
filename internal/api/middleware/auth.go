// Package middleware provides the request middleware applied ahead of the
// handlers.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rkshop/admin-api/internal/api"
	"github.com/rkshop/admin-api/internal/api/shared"
	"github.com/rkshop/admin-api/internal/platform/logger"
	"github.com/rkshop/admin-api/internal/service/auth"
)

// AuthMiddleware gates protected routes behind JWT verification.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate verifies the bearer token from the Authorization header and
// attaches the verified claims to the request context. The "Bearer " prefix
// is stripped when present but not required. A handler behind this
// middleware never runs without verified claims in its context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, api.MsgUnauthorized)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, api.MsgTokenExpired)
			case errors.Is(err, auth.ErrInvalidToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, api.MsgInvalidToken)
			default:
				log.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, api.MsgInternalError)
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaims extracts the verified claims from the request context.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	return claims, ok && claims != nil
}
