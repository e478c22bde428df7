package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/forkline/chat-service/internal/config"
	"github.com/forkline/chat-service/internal/model"
)

type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*model.AccessClaims, error)
}

// AuthHTTP is the identity-provider boundary: it turns a bearer token into
// the caller's uuid under config.KeyUUID. Everything past this middleware
// trusts that value.
func AuthHTTP(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			claims, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeUnauthorized(w, "invalid access token")
				return
			}

			ctx := context.WithValue(r.Context(), config.KeyUUID, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
