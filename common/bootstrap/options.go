package bootstrap

import (
	"github.com/lyzr/docgateway/common/config"
	"github.com/lyzr/docgateway/common/logger"
)

// Option configures the bootstrap process
type Option func(*options)

type options struct {
	skipStorage   bool
	skipDeriver   bool
	skipTelemetry bool
	customLogger  *logger.Logger
	customConfig  *config.Config
}

// WithoutStorage skips blob storage client initialization
func WithoutStorage() Option {
	return func(o *options) {
		o.skipStorage = true
	}
}

// WithoutDeriver skips LLM provider client initialization
func WithoutDeriver() Option {
	return func(o *options) {
		o.skipDeriver = true
	}
}

// WithoutTelemetry skips telemetry initialization
func WithoutTelemetry() Option {
	return func(o *options) {
		o.skipTelemetry = true
	}
}

// WithCustomLogger uses a custom logger instead of creating one
func WithCustomLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.customLogger = log
	}
}

// WithCustomConfig uses a custom config instead of loading from env
func WithCustomConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.customConfig = cfg
	}
}

func defaultOptions() *options {
	return &options{
		skipStorage:   false,
		skipDeriver:   false,
		skipTelemetry: false,
	}
}
