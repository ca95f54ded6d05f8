package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/studybuddy/pkg/clock"
)

const probeTimeout = 3 * time.Second

// Prober is a dependency that can report its health.
type Prober interface {
	Ping(ctx context.Context) error
}

// ProberFunc adapts a function to Prober.
type ProberFunc func(ctx context.Context) error

func (f ProberFunc) Ping(ctx context.Context) error { return f(ctx) }

// Probe names a dependency checked by /ready and /health.
type Probe struct {
	Name   string
	Prober Prober
	// Optional probes are reported by /health but do not fail /ready.
	Optional bool
}

// HealthHandler serves liveness, readiness and health endpoints.
type HealthHandler struct {
	probes  []Probe
	version string
	clock   clock.Clock
	started time.Time
}

// NewHealthHandler creates a HealthHandler checking probes in order.
func NewHealthHandler(version string, clk clock.Clock, probes ...Probe) *HealthHandler {
	return &HealthHandler{
		probes:  probes,
		version: version,
		clock:   clk,
		started: clk.Now(),
	}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of a single probe.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.clock.Now(),
	})
}

// Status reports the service version without checking dependencies.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Timestamp: h.clock.Now(),
	})
}

// Ready answers 503 when a required probe fails.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	for _, p := range h.probes {
		if p.Optional {
			continue
		}
		if err := p.Prober.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:    "down",
				Timestamp: h.clock.Now(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.clock.Now(),
	})
}

// Health runs every probe and reports per-component status and latency.
// A failing optional probe degrades the status without failing the request.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.probes))
	overall := "ok"

	for _, p := range h.probes {
		start := time.Now()
		err := p.Prober.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components[p.Name] = CompStatus{Status: "down", Error: err.Error()}
			switch {
			case !p.Optional:
				overall = "down"
			case overall == "ok":
				overall = "degraded"
			}
			continue
		}
		components[p.Name] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}

	now := h.clock.Now()
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Uptime:     now.Sub(h.started).Truncate(time.Second).String(),
		Components: components,
		Timestamp:  now,
	})
}
