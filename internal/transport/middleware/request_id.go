package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/pkg/ctxutil"
)

const (
	RequestIDHeader = "X-Request-Id"

	maxRequestIDLen = 128
)

// RequestID reuses the caller's X-Request-Id when it is reasonably sized,
// otherwise it generates a new UUID. The id is echoed in the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
