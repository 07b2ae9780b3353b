package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/quiethours/momentswap/internal/session"
)

type key string

const userIDKey key = "user_id"

// GetUserID returns the authenticated user id stashed by RequirePage or
// RequireAPI.
func GetUserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// WithUserID returns a context carrying the authenticated user id, as the
// auth middlewares set it. Handler tests use it to skip the middleware.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// RequirePage guards HTML routes: unauthenticated requests are redirected
// to the sign-in page.
func RequirePage(m *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := m.CurrentUser(r.Context(), r)
			if err != nil {
				http.Redirect(w, r, "/signin", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// RequireAPI guards JSON routes: unauthenticated requests get 401.
func RequireAPI(m *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := m.CurrentUser(r.Context(), r)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
