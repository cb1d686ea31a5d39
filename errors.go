package notedex

import "errors"

var (
	// ErrDocumentSourceRequired is returned when no document source is given.
	ErrDocumentSourceRequired = errors.New("document source required")

	// ErrInvalidOption is returned for a nil or empty option value.
	ErrInvalidOption = errors.New("invalid option")

	// ErrStorageNotConfigured is returned by Restore on an engine without storage.
	ErrStorageNotConfigured = errors.New("index storage not configured")
)
