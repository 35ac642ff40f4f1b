package cascade

import (
	"log/slog"
	"time"
)

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the clock used to stamp recency entries. Tests use this
// to drive activation timestamps deterministically. The default is
// time.Now.
func WithClock(clock func() time.Time) Option {
	return func(r *Registry) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithLogger sets the structured logger for dispatch tracing. The default
// discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithPanicHandler sets an observer for handler panics. The panic is
// still returned to the Dispatch caller as a *PanicError.
func WithPanicHandler(h PanicHandler) Option {
	return func(r *Registry) {
		r.exec.onPanic = h
	}
}
