// Package identity extracts the caller-supplied user id from requests.
// Authentication itself lives in the surrounding system; the core only
// requires a valid X-User-ID header.
package identity

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/decentracode/creditcore/pkg/utils"
)

type contextKey string

const UserIDKey contextKey = "userID"

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "missing X-User-ID header")
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "invalid X-User-ID header")
			return
		}
		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the authenticated user id set by Middleware.
func FromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}
