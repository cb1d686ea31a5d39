package ai

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when RetryWithBackoff is called with a non-positive attempt count.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be > 0")

	// ErrInvalidConfig is wrapped by every Config.Validate failure.
	ErrInvalidConfig = errors.New("ai config")
)
