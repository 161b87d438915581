package handler

import (
	"log/slog"
	"net/http"

	"github.com/sectionconnection/users-api/internal/handler/dto"
	"github.com/sectionconnection/users-api/internal/metrics"
	"github.com/sectionconnection/users-api/internal/middleware"
)

// requireStore pings the store ahead of routing for requests on path.
// On failure every method, supported or not, gets the connection error
// and neither method dispatch nor body validation runs.
func requireStore(path string, store HealthChecker, recorder metrics.Recorder, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != path {
				next.ServeHTTP(w, r)
				return
			}

			if err := store.Ping(r.Context()); err != nil {
				recorder.IncStoreFailure(metrics.OpPing, metrics.FailureConnection)
				logger.Error("database_connection_failed",
					"op", metrics.OpPing,
					"method", r.Method,
					"request_id", middleware.GetRequestID(r.Context()),
					"error", err,
				)
				writeJSON(w, logger, http.StatusInternalServerError, dto.Error(MsgConnectionFailed))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
