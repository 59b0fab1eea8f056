package codec

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Observer receives codec diagnostics. Implementations must be cheap; they
// run on the serialization path.
type Observer interface {
	DecodeFailed(op string)
	EncodeDropped(op string)
}

// Option configures a Decoder or Encoder.
type Option func(*options)

type options struct {
	log      *zerolog.Logger
	observer Observer
}

// WithLogger routes diagnostics to logger instead of the global zerolog
// logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.log = &logger
	}
}

// WithObserver attaches an Observer for failure and drop events.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// logger resolves lazily so instances built before logging.Configure still
// pick up the configured global logger.
func (o *options) logger() *zerolog.Logger {
	if o.log != nil {
		return o.log
	}
	return &log.Logger
}
