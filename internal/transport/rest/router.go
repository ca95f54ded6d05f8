package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/internal/config"
	"github.com/heartmarshall/studybuddy/internal/transport/middleware"
	"github.com/heartmarshall/studybuddy/pkg/metrics"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Cards    *CardHandler
	Progress *ProgressHandler
	// Metrics serves /metrics when set.
	Metrics http.Handler
	// Admins may call the /api/v1/admin endpoints.
	Admins []uuid.UUID
}

// NewRouter builds the HTTP API. rl may be nil to disable rate limiting.
func NewRouter(log *slog.Logger, cors config.CORSConfig, m *metrics.Metrics, rl *middleware.RateLimiter, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.Metrics(m),
		middleware.CORS(cors),
	)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	r.Get("/status", h.Health.Status)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		var limit middleware.Middleware
		if rl != nil {
			limit = rl.Limit()
		}
		r.Use(middleware.Chain(limit, middleware.Identity(h.Admins...)))

		r.Get("/cards", h.Cards.List)
		r.Post("/cards", h.Cards.Create)
		r.Post("/cards/{id}/review", h.Cards.Review)
		r.Delete("/cards/{id}", h.Cards.Delete)

		r.Get("/stats", h.Progress.Stats)
		r.Post("/xp", h.Progress.AwardXP)
		r.Get("/sessions", h.Progress.ListSessions)
		r.Post("/sessions", h.Progress.LogSession)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/stats", h.Progress.SystemStats)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
