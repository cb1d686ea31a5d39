package search

import "errors"

var (
	// ErrDocumentSourceRequired is returned when a document source is not provided.
	ErrDocumentSourceRequired = errors.New("document source required")

	// ErrTermIndexRequired is returned when a term index is not provided.
	ErrTermIndexRequired = errors.New("term index required")

	// ErrProviderRequired is returned when an AI provider is not provided.
	ErrProviderRequired = errors.New("AI provider required")

	// ErrInvalidConfig is returned when search thresholds are out of range.
	ErrInvalidConfig = errors.New("invalid search config")

	// ErrNilLogger is returned when WithLogger is given a nil logger.
	ErrNilLogger = errors.New("logger cannot be nil")
)
