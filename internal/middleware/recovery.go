package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/sectionconnection/users-api/internal/handler/dto"
)

// Recoverer is a middleware that recovers from panics.
// It logs the panic with its stack and answers with a 500 error envelope.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}

					logger.Error("panic recovered",
						slog.String("request_id", GetRequestID(r.Context())),
						slog.Any("panic", rvr),
						slog.String("stack", string(debug.Stack())),
					)

					writeError(w, http.StatusInternalServerError, "Internal server error.")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// writeError writes an error envelope. Used where the handler package is not reachable.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.Error(message))
}
