// Package metrics holds the Prometheus collectors exported by the server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the set of server collectors. A nil *Metrics records nothing.
type Metrics struct {
	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	xpAwards  *prometheus.CounterVec
	xpPoints  prometheus.Counter
	sessions  prometheus.Counter
	gatherer  prometheus.Gatherer
}

// New creates the collectors and registers them with reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		),
		xpAwards: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studybuddy_xp_awards_total",
				Help: "XP award requests by outcome (applied or duplicate)",
			},
			[]string{"outcome"},
		),
		xpPoints: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "studybuddy_xp_points_total",
			Help: "XP points applied to user totals",
		}),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "studybuddy_study_sessions_total",
			Help: "Finished study sessions recorded",
		}),
		gatherer: reg,
	}

	reg.MustRegister(m.requests, m.durations, m.xpAwards, m.xpPoints, m.sessions)
	return m
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.durations.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveXP records an award request; duplicates add no points.
func (m *Metrics) ObserveXP(amount int, applied bool) {
	if m == nil {
		return
	}
	if !applied {
		m.xpAwards.WithLabelValues("duplicate").Inc()
		return
	}
	m.xpAwards.WithLabelValues("applied").Inc()
	m.xpPoints.Add(float64(amount))
}

// ObserveSession records a logged study session.
func (m *Metrics) ObserveSession() {
	if m == nil {
		return
	}
	m.sessions.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
