package index

import "errors"

var (
	// ErrTokenizerRequired is returned when an index is created without a tokenizer.
	ErrTokenizerRequired = errors.New("tokenizer is required")

	// ErrEmbedderRequired is returned when an index is created without a word embedder.
	ErrEmbedderRequired = errors.New("word embedder is required")

	// ErrNilLogger is returned by WithLogger(nil).
	ErrNilLogger = errors.New("logger cannot be nil")
)
