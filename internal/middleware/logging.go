package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logger returns a middleware that writes one access record per request.
// Records carry the route pattern, never the body or client headers.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			resp := observe(w)

			next.ServeHTTP(resp, r)

			status := resp.code()
			logger.LogAttrs(r.Context(), levelForStatus(status), "request_served",
				slog.String("request_id", GetRequestID(r.Context())),
				slog.String("method", r.Method),
				slog.String("route", routeLabel(r, status)),
				slog.Int("status", status),
				slog.Int("bytes", resp.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
