package server

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bobmcallan/greenvest/internal/models"
)

// Metrics holds the Prometheus collectors for one server instance
type Metrics struct {
	registry            *prometheus.Registry
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	recommendationTotal *prometheus.CounterVec
}

// NewMetrics registers the server collectors on a fresh registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "greenvest_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "greenvest_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		recommendationTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "greenvest_predictions_total",
				Help: "Predictions served by recommended action",
			},
			[]string{"action"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordAction counts one served prediction
func (m *Metrics) RecordAction(action models.Action) {
	m.recommendationTotal.WithLabelValues(string(action)).Inc()
}

// knownRoutes are the fixed paths served by the mux
var knownRoutes = map[string]bool{
	"/api/health":                   true,
	"/api/version":                  true,
	"/api/admin/refresh":            true,
	"/api/funds":                    true,
	"/api/funds/":                   true,
	"/api/compare":                  true,
	"/api/analytics/moving-average": true,
	"/api/analytics/volatility":     true,
	"/api/analytics/sharpe":         true,
	"/api/analytics/predict":        true,
	"/api/analytics/impact":         true,
	"/api/portfolio/recommend":      true,
	"/api/portfolio/overview":       true,
	"/api/investments":              true,
	"/mcp":                          true,
	"/metrics":                      true,
}

// fundSubroutes are the /api/funds/{id}/* endpoints
var fundSubroutes = map[string]bool{
	"prices":         true,
	"metrics":        true,
	"insights":       true,
	"prediction":     true,
	"impact":         true,
	"chart":          true,
	"moving-average": true,
}

// routeLabel maps a request path onto a bounded set of route labels.
// Fund ids collapse to {id}; any other path is "other".
func routeLabel(path string) string {
	if knownRoutes[path] {
		return path
	}
	rest, ok := strings.CutPrefix(path, "/api/funds/")
	if !ok {
		return "other"
	}
	id, sub, found := strings.Cut(rest, "/")
	switch {
	case id == "":
		return "other"
	case !found:
		return "/api/funds/{id}"
	case fundSubroutes[sub]:
		return "/api/funds/{id}/" + sub
	}
	return "other"
}
