// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Store operation labels.
const (
	OpListUsers  = "list_users"
	OpCreateUser = "create_user"
	OpPing       = "ping"
)

// Store failure kinds.
const (
	FailureConnection = "connection"
	FailureQuery      = "query"
)

// Recorder captures metric events for the application.
type Recorder interface {
	// HTTP metrics
	ObserveRequest(method, route string, status int, duration time.Duration)

	// User metrics
	IncUserCreated()
	IncValidationFailure()
	IncStoreFailure(op, kind string)
}
