package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

type observation struct {
	method string
	route  string
	status int
}

type captureRecorder struct {
	mu  sync.Mutex
	obs []observation
}

func (c *captureRecorder) ObserveRequest(method, route string, status int, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.obs = append(c.obs, observation{method, route, status})
}

func (c *captureRecorder) IncUserCreated()             {}
func (c *captureRecorder) IncValidationFailure()       {}
func (c *captureRecorder) IncStoreFailure(_, _ string) {}

func TestMetrics_RoutePatternLabels(t *testing.T) {
	rec := &captureRecorder{}

	r := chi.NewRouter()
	r.Use(Metrics(rec))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		method    string
		path      string
		wantRoute string
		wantCode  int
	}{
		{http.MethodGet, "/", "/", http.StatusOK},
		{http.MethodDelete, "/", unmatchedRoute, http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", unmatchedRoute, http.StatusNotFound},
	}

	for _, tt := range tests {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.path, nil))
	}

	if len(rec.obs) != len(tests) {
		t.Fatalf("got %d observations, want %d", len(rec.obs), len(tests))
	}
	for i, tt := range tests {
		got := rec.obs[i]
		if got.method != tt.method || got.route != tt.wantRoute || got.status != tt.wantCode {
			t.Errorf("obs[%d] = %+v, want {%s %s %d}", i, got, tt.method, tt.wantRoute, tt.wantCode)
		}
	}
}

func TestMetrics_CountsRecoveredPanic(t *testing.T) {
	rec := &captureRecorder{}

	r := chi.NewRouter()
	r.Use(Metrics(rec))
	r.Use(Recoverer(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if len(rec.obs) != 1 {
		t.Fatalf("got %d observations, want 1", len(rec.obs))
	}
	if got := rec.obs[0]; got.status != http.StatusInternalServerError || got.route != "/" {
		t.Errorf("observation = %+v, want route / status 500", got)
	}
}
