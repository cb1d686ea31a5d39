package index

import (
	"log/slog"
)

type options struct {
	logger *slog.Logger
}

// Option configures a TermIndex or EmbeddingIndex.
type Option func(*options) error

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return ErrNilLogger
		}
		o.logger = logger
		return nil
	}
}

func applyOptions(component string, opts []Option) (*options, error) {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	o.logger = o.logger.With("component", component)
	return o, nil
}
