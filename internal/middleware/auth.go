// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/atinyakov/TalkTracker/internal/auth"
)

type ctxKey string

const accountKey ctxKey = "account"

// exempt lists the endpoints reachable without a session token, so new
// users can register and obtain one.
var exempt = map[string]bool{
	"/api/register": true,
	"/api/login":    true,
}

// BearerAuth returns a middleware that enforces bearer-token authentication.
//
// It verifies the Authorization header against the signing secret and, on
// success, stores the account id from the token in the request context so
// it can be used downstream as the authenticated caller.
func BearerAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if exempt[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}

			accountID, err := auth.GetAccountIDFromToken(token, secret)
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), accountKey, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAccountIDFromContext extracts the authenticated account id from the
// request context. Returns an empty string if not found.
func GetAccountIDFromContext(ctx context.Context) string {
	val := ctx.Value(accountKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}

// WithAccountID returns a context carrying the given account id. It exists
// for handler tests that bypass the middleware.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountKey, accountID)
}
