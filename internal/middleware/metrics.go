package middleware

import (
	"net/http"
	"time"

	"github.com/sectionconnection/users-api/internal/metrics"
)

// Metrics returns a middleware that reports each request to the recorder,
// labelled by chi route pattern to keep cardinality bounded.
func Metrics(recorder metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			resp := observe(w)

			next.ServeHTTP(resp, r)

			status := resp.code()
			recorder.ObserveRequest(r.Method, routeLabel(r, status), status, time.Since(start))
		})
	}
}
