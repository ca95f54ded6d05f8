package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/studybuddy/pkg/ctxutil"
)

// Recovery turns a handler panic into a logged 500. When the handler has
// already started its response only the log entry is written.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrapStatus(w)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				attrs := append(ctxutil.LogAttrs(r.Context()),
					slog.Any("error", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", sw.wroteHeader),
					slog.String("stack", string(debug.Stack())),
				)
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				if !sw.wroteHeader {
					writeError(sw, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(sw, r)
		})
	}
}
