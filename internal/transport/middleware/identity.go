package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/pkg/ctxutil"
)

const UserIDHeader = "X-User-Id"

// Identity reads the caller's id from X-User-Id. Requests without a valid
// UUID are rejected with 401 before reaching the handler. Callers listed in
// admins are marked as administrators.
func Identity(admins ...uuid.UUID) Middleware {
	adminSet := make(map[uuid.UUID]struct{}, len(admins))
	for _, id := range admins {
		adminSet[id] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := ctxutil.ParseUserID(r.Header.Get(UserIDHeader))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "missing or invalid "+UserIDHeader+" header")
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			if _, ok := adminSet[userID]; ok {
				ctx = ctxutil.WithAdmin(ctx)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
