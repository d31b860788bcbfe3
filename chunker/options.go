package chunker

import "log/slog"

// Option configures a chunker.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger that receives a debug record per chunking call.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
