package threadpool

import "go.uber.org/zap"

type Option func(*options)

type options struct {
	name         string
	logger       *zap.Logger
	metrics      *Metrics
	lockOSThread bool
}

func defaultOptions() options {
	return options{
		name:   "default",
		logger: zap.L(),
	}
}

// WithName sets the name used in logs and status reports.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger. Defaults to the global zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithLockOSThread pins every worker goroutine to its own OS thread for the
// lifetime of the pool.
func WithLockOSThread() Option {
	return func(o *options) {
		o.lockOSThread = true
	}
}
