package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Amadavid/alx-backend-user-data/internal/auth"
	"github.com/Amadavid/alx-backend-user-data/internal/logger"
	"github.com/Amadavid/alx-backend-user-data/internal/user"
)

// unexported, collision-proof context key
type userContextKeyType struct{}

var userKey = userContextKeyType{}

// UserFromContext extracts the authenticated user from context.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userKey).(*user.User)
	return u, ok && u != nil
}

// WithUser returns a copy of ctx carrying u.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

type AuthMiddleware struct {
	Auth          auth.Authenticator
	CookieName    string
	ExcludedPaths []string
}

func NewAuthMiddleware(a auth.Authenticator, cookieName string, excluded []string) *AuthMiddleware {
	return &AuthMiddleware{
		Auth:          a,
		CookieName:    cookieName,
		ExcludedPaths: excluded,
	}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Excluded paths pass through untouched
		if !auth.RequireAuth(r.URL.Path, a.ExcludedPaths) {
			next.ServeHTTP(w, r)
			return
		}

		// 2. Some credential must be present
		if auth.AuthorizationHeader(r) == "" && auth.SessionCookie(r, a.CookieName) == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// 3. Resolve the user behind it
		u, err := a.Auth.CurrentUser(r)
		if err != nil {
			logger.Error("current user lookup failed", map[string]any{
				"error": err.Error(),
				"path":  r.URL.Path,
			})
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if u == nil {
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}

		// 4. Continue with the user attached
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
