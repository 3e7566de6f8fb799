package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iho/dwh/internal/adapter/http/handler"
	"github.com/iho/dwh/internal/adapter/http/middleware"
	"github.com/iho/dwh/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	HealthHandler *handler.HealthHandler
	QueryHandler  *handler.QueryHandler
	SyncHandler   *handler.SyncHandler

	// Optional; nil disables per-request metrics and the /metrics endpoint.
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	LoggingMiddleware *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.LoggingMiddleware != nil {
		r.Use(cfg.LoggingMiddleware.Wrap)
	}
	r.Use(chimiddleware.Recoverer)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	r.Get("/health", cfg.HealthHandler.Health)
	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/tenants", cfg.QueryHandler.ListTenants)
		r.Route("/tenants/{tenant}/accounts", func(r chi.Router) {
			r.Get("/", cfg.QueryHandler.ListAccounts)
			r.Get("/{account}", cfg.QueryHandler.GetAccount)
		})

		r.Post("/sync", cfg.SyncHandler.Trigger)
	})

	return r
}
