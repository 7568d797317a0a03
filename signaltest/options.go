package signaltest

import (
	"time"

	"github.com/thruflo/sigwatch/internal/logging"
)

// DefaultTimeout is the window a matcher waits for an emission.
const DefaultTimeout = 100 * time.Millisecond

// Option configures a matcher call.
type Option func(*options)

type options struct {
	timeout   time.Duration
	formatter Formatter
	logger    *logging.Logger
	scope     Scope
}

func newOptions(opts []Option) options {
	o := options{
		timeout:   DefaultTimeout,
		formatter: DefaultFormatter{},
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.timeout < 0 {
		o.timeout = 0
	}
	if o.formatter == nil {
		o.formatter = DefaultFormatter{}
	}
	if o.logger == nil {
		o.logger = logging.Default()
	}
	return o
}

// WithTimeout overrides DefaultTimeout for one call.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithFormatter sets the Formatter used for equality and diagnostics.
func WithFormatter(f Formatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}

// WithLogger sets the logger that traces resolution.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithScope hands the subscription a matcher observes through to scope, which
// releases it when it runs its cleanups. Without a scope the subscription is
// only released when the signal itself goes away (for a watched signal, when
// the watch is released).
func WithScope(scope Scope) Option {
	return func(o *options) {
		o.scope = scope
	}
}
