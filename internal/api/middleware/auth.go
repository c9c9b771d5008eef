package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

// TokenAuthorizer reports whether a bearer token grants admin access.
type TokenAuthorizer interface {
	Authorize(token string) error
}

// AdminAuthMiddleware rejects requests that lack a valid bearer token.
func AdminAuthMiddleware(authorizer TokenAuthorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			token = strings.TrimSpace(token)
			if !ok || token == "" {
				unauthorized(w, "missing bearer token")
				return
			}
			if err := authorizer.Authorize(token); err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
