package ingestion

import "errors"

var (
	// ErrTermIndexRequired is returned when a term index is not provided.
	ErrTermIndexRequired = errors.New("term index required")

	// ErrEmbeddingIndexRequired is returned when an embedding index is not provided.
	ErrEmbeddingIndexRequired = errors.New("embedding index required")

	// ErrPipelineReleased is returned when tasks are submitted after Release.
	ErrPipelineReleased = errors.New("pipeline released")

	// ErrNilLogger is returned when WithLogger is given a nil logger.
	ErrNilLogger = errors.New("logger cannot be nil")
)
