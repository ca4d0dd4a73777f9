package infra

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/eventlink/chat-service/internal/config"
	"github.com/eventlink/chat-service/internal/model"
)

type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*model.AccessClaims, error)
}

// AuthInterceptorHTTP authenticates the caller and stores its uuid in the
// context under config.KeyUUID. Everything behind it can assume an
// authenticated identity.
func AuthInterceptorHTTP(next http.Handler, tokens TokenValidator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		claims, err := tokens.ValidateAccessToken(tokenString)
		if err != nil {
			http.Error(w, "invalid access token", http.StatusUnauthorized)
			return
		}

		// handlers rely on the subject being a well-formed uuid
		if _, err := uuid.Parse(claims.Subject); err != nil {
			http.Error(w, "invalid access token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
