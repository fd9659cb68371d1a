package bootstrap

import (
	"context"
	"fmt"

	"github.com/lyzr/docgateway/common/blob"
	"github.com/lyzr/docgateway/common/config"
	"github.com/lyzr/docgateway/common/derive"
	"github.com/lyzr/docgateway/common/logger"
	"github.com/lyzr/docgateway/common/telemetry"
)

// Components holds all initialized service dependencies. Everything here
// is read-only for the process lifetime; requests share nothing else.
type Components struct {
	Config    *config.Config
	Logger    *logger.Logger
	Blob      *blob.Fetcher
	Deriver   *derive.Client
	Telemetry *telemetry.Telemetry

	// Internal
	cleanupFuncs []func() error
}

// Shutdown performs graceful shutdown of all components
// Should be called with defer after Setup()
func (c *Components) Shutdown(ctx context.Context) error {
	c.Logger.Info("shutting down components")

	var errors []error

	// Run cleanup functions in reverse order (LIFO)
	for i := len(c.cleanupFuncs) - 1; i >= 0; i-- {
		if err := c.cleanupFuncs[i](); err != nil {
			errors = append(errors, err)
			c.Logger.Error("cleanup error", "error", err)
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("shutdown errors: %v", errors)
	}

	c.Logger.Info("shutdown complete")
	return nil
}

// addCleanup registers a cleanup function
func (c *Components) addCleanup(fn func() error) {
	c.cleanupFuncs = append(c.cleanupFuncs, fn)
}
