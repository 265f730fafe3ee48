package middleware

import (
	"context"
	"net/http"

	"carrybid/pkg/utils"
)

// UserIDHeader carries the authenticated user id, set by the identity layer
// in front of this service. The service trusts the id but never a
// client-asserted role; roles are derived from the data.
const UserIDHeader = "X-User-Id"

type userIDKey struct{}

func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserIDHeader)
		if userID == "" {
			utils.WriteError(w, "missing user identity", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}
