package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that hit no registered route or method.
const unmatchedRoute = "unmatched"

// observedResponse records the status and size of what a handler sent back.
type observedResponse struct {
	http.ResponseWriter
	status int
	bytes  int
}

func observe(w http.ResponseWriter) *observedResponse {
	return &observedResponse{ResponseWriter: w}
}

func (o *observedResponse) WriteHeader(code int) {
	if o.status != 0 {
		return
	}
	o.status = code
	o.ResponseWriter.WriteHeader(code)
}

func (o *observedResponse) Write(b []byte) (int, error) {
	if o.status == 0 {
		o.WriteHeader(http.StatusOK)
	}
	n, err := o.ResponseWriter.Write(b)
	o.bytes += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (o *observedResponse) Unwrap() http.ResponseWriter {
	return o.ResponseWriter
}

// code is the status sent, 200 if the handler never wrote anything.
func (o *observedResponse) code() int {
	if o.status == 0 {
		return http.StatusOK
	}
	return o.status
}

// routeLabel returns the chi pattern that served r. 404s, 405s and requests
// answered before routing share one label so raw paths never become labels.
func routeLabel(r *http.Request, status int) string {
	if status == http.StatusNotFound || status == http.StatusMethodNotAllowed {
		return unmatchedRoute
	}
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
