package files

import "errors"

var (
	// ErrNotDirectory is returned when the source root is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrInvalidPattern is returned for malformed glob patterns.
	ErrInvalidPattern = errors.New("invalid glob pattern")

	// ErrInvalidFrontMatter is returned when a note's front matter cannot be parsed.
	ErrInvalidFrontMatter = errors.New("invalid front matter")

	// ErrNilLogger is returned when WithLogger is given a nil logger.
	ErrNilLogger = errors.New("logger cannot be nil")
)
