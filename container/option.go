package container

import (
	"github.com/arloliu/go-containers/logger"
)

const defaultPrealloc = 8

// config holds the construction parameters shared by Queue and Stack.
type config struct {
	name     string
	prealloc int
	logger   logger.Logger
}

// newConfig initializes a config with defaults and applies the provided options.
func newConfig(defName string, opts ...Option) *config {
	cfg := &config{
		name:     defName,
		prealloc: defaultPrealloc,
		logger:   logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option customizes container construction.
type Option func(*config)

// WithName sets the display name of the container.
//
// For a Queue the name defaults to "Queue"; for a Stack this overrides the
// name passed to NewStack.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}

// WithLogger sets the logger instance used by the container diagnostics.
//
// Defaults to the package-level default logger. A nil logger is ignored.
func WithLogger(l logger.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithPrealloc sets the initial storage capacity of a Queue, avoiding early
// growth when the expected item count is known up front.
//
// It has no effect on a Stack, whose storage is sized by its fixed capacity.
// Non-positive values are ignored.
func WithPrealloc(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.prealloc = n
		}
	}
}
