package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-gaming-platform/internal/jwt"
	"github.com/sbilibin2017/gw-gaming-platform/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware returns a middleware that validates the bearer token and
// stores its claims in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.FromContext(ctx).Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.FromContext(ctx).Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithClaims(ctx, claims)))
		})
	}
}

// RequireRole rejects requests whose claims carry a different role.
// It must run after AuthMiddleware.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := jwt.ClaimsFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			if claims.Role != role {
				logger.FromContext(r.Context()).Warnw("role check failed",
					"user_id", claims.UserID, "role", claims.Role, "required", role)
				writeError(w, http.StatusForbidden, "Admin privileges required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
