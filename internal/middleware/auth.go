package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/caretrack/wellness/internal/auth"
	"github.com/caretrack/wellness/internal/httperr"
	"github.com/caretrack/wellness/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// RoleKey is the context key for storing the authenticated user's role.
	RoleKey contextKey = "role"
)

// GetUserID extracts the authenticated user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetRole extracts the authenticated user's role from the context.
func GetRole(ctx context.Context) models.Role {
	role, _ := ctx.Value(RoleKey).(models.Role)
	return role
}

// RequireAuth validates the bearer token on every request and adds the
// resolved user ID and role to the request context.
//
// A missing credential is 401; a present but unusable one, wrong scheme
// included, is 403, matching the distinction between "not logged in" and
// "bad token".
func RequireAuth(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httperr.Write(w, httperr.Unauthenticated(auth.ErrMissingToken.Error()))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				httperr.Write(w, httperr.Forbidden(auth.ErrInvalidToken.Error()))
				return
			}

			claims, err := jwtManager.Validate(parts[1])
			if err != nil {
				httperr.Write(w, httperr.Forbidden(auth.ErrInvalidToken.Error()))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose resolved role does not match.
// Must run after RequireAuth.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetRole(r.Context()) != role {
				httperr.Write(w, httperr.Forbidden("Access denied: insufficient permissions"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
