package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// ObserveRequest is a no-op.
func (n *NoopRecorder) ObserveRequest(method, route string, status int, duration time.Duration) {}

// IncUserCreated is a no-op.
func (n *NoopRecorder) IncUserCreated() {}

// IncValidationFailure is a no-op.
func (n *NoopRecorder) IncValidationFailure() {}

// IncStoreFailure is a no-op.
func (n *NoopRecorder) IncStoreFailure(op, kind string) {}
