package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sectionconnection/users-api/internal/metrics"
	"github.com/sectionconnection/users-api/internal/middleware"
)

// RouterConfig carries everything NewRouter wires together.
type RouterConfig struct {
	Logger   *slog.Logger
	Users    *UserHandler
	Health   *HealthHandler
	Recorder metrics.Recorder
	// Store, when non-nil, is pinged before any request on UsersPath is routed.
	Store HealthChecker
	// MetricsHandler is mounted at /metrics when non-nil.
	MetricsHandler http.Handler
	// UsersPath is where the users resource is served. Defaults to "/".
	UsersPath string
	Security  middleware.SecurityConfig
}

// NewRouter configures the chi router with all routes and middleware.
func NewRouter(cfg RouterConfig) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	recorder := cfg.Recorder
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	usersPath := cfg.UsersPath
	if usersPath == "" {
		usersPath = "/"
	}

	h := New(logger)
	r := chi.NewRouter()

	// Global middleware. Metrics sits outside Recoverer so recovered panics are counted.
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics(recorder))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(cfg.Security))
	if cfg.Store != nil {
		r.Use(requireStore(usersPath, cfg.Store, recorder, logger))
	}

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	if cfg.Health != nil {
		r.Get("/healthz", cfg.Health.Healthz)
		r.Get("/readyz", cfg.Health.Readyz)
	}

	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	// Users resource: GET lists, POST creates, anything else is 405.
	r.Get(usersPath, cfg.Users.List)
	r.With(middleware.MaxBodySize(cfg.Security.MaxRequestBodySize)).Post(usersPath, cfg.Users.Create)

	return r
}
