// Package clients provides the instrumented HTTP client used to talk to a board.
package clients

import "errors"

// Transport-level failures. Callers translate them into domain errors.
var (
	// ErrCircuitOpen means the breaker is blocking calls to the board.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last transport error after every attempt failed.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
