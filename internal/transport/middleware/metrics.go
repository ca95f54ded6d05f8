package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/studybuddy/pkg/metrics"
)

// Metrics records request counts and latency labelled by chi route pattern.
// Unmatched requests are grouped under "unmatched".
func Metrics(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := wrapStatus(w)

			next.ServeHTTP(sw, r)

			route := routePattern(r)
			if route == "" {
				route = "unmatched"
			}
			m.ObserveRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
