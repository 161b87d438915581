package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	Requests           uint64
	UsersCreated       uint64
	ValidationFailures uint64
	// StoreFailures is keyed by "op/kind", e.g. "list_users/connection".
	StoreFailures map[string]uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	requests           uint64
	usersCreated       uint64
	validationFailures uint64

	mu            sync.Mutex
	storeFailures map[string]uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{storeFailures: make(map[string]uint64)}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	failures := make(map[string]uint64, len(m.storeFailures))
	for k, v := range m.storeFailures {
		failures[k] = v
	}
	m.mu.Unlock()

	return Snapshot{
		Requests:           atomic.LoadUint64(&m.requests),
		UsersCreated:       atomic.LoadUint64(&m.usersCreated),
		ValidationFailures: atomic.LoadUint64(&m.validationFailures),
		StoreFailures:      failures,
	}
}

// ObserveRequest counts a served request.
func (m *InMemoryRecorder) ObserveRequest(method, route string, status int, duration time.Duration) {
	atomic.AddUint64(&m.requests, 1)
}

// IncUserCreated increments users created counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}

// IncValidationFailure increments rejected create requests.
func (m *InMemoryRecorder) IncValidationFailure() {
	atomic.AddUint64(&m.validationFailures, 1)
}

// IncStoreFailure increments the failure counter for op and kind.
func (m *InMemoryRecorder) IncStoreFailure(op, kind string) {
	m.mu.Lock()
	m.storeFailures[op+"/"+kind]++
	m.mu.Unlock()
}
