package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthChecker defines an interface for checking service health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	db     HealthChecker
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
// Pass nil for db if it is not yet initialized.
func NewHealthHandler(db HealthChecker, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{db: db, logger: logger}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz is a liveness probe endpoint.
// It returns 200 if the server is running.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz is a readiness probe endpoint.
// It returns 200 only if the database answers a ping.
// The probe reports a failure without the underlying error text.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)
	healthy := true

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			checks["postgres"] = "unreachable"
			healthy = false
		} else {
			checks["postgres"] = "ok"
		}
	} else {
		checks["postgres"] = "not configured"
	}

	status := "ok"
	statusCode := http.StatusOK
	if !healthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, h.logger, statusCode, HealthResponse{
		Status: status,
		Checks: checks,
	})
}
