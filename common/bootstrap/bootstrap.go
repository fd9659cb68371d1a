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

// Setup initializes all service components
// This is the main entry point for the gateway binary
func Setup(ctx context.Context, serviceName string, opts ...Option) (*Components, error) {
	// Apply options
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	components := &Components{
		cleanupFuncs: make([]func() error, 0),
	}

	// 1. Load configuration
	var err error
	if options.customConfig != nil {
		components.Config = options.customConfig
	} else {
		components.Config, err = config.Load(serviceName)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// 2. Initialize logger
	if options.customLogger != nil {
		components.Logger = options.customLogger
	} else {
		components.Logger = logger.New(
			components.Config.Service.LogLevel,
			components.Config.Service.LogFormat,
		)
	}

	components.Logger.Info("initializing service",
		"service", serviceName,
		"environment", components.Config.Service.Environment,
	)

	// 3. Initialize blob storage client (if not skipped)
	if !options.skipStorage {
		components.Blob, err = blob.NewFetcher(
			components.Config.Storage.ConnectionString,
			components.Logger,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize blob storage: %w", err)
		}
	}

	// 4. Initialize LLM provider client (if not skipped)
	if !options.skipDeriver {
		components.Deriver, err = derive.NewClient(
			components.Config.Provider.APIKey,
			components.Config.Provider.Model,
			components.Logger,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize derivation client: %w", err)
		}
	}

	// 5. Initialize telemetry (if not skipped)
	if !options.skipTelemetry && components.Config.Telemetry.EnablePprof {
		components.Logger.Info("initializing telemetry")
		components.Telemetry = telemetry.New(
			components.Config.Telemetry.PprofPort,
			components.Logger,
		)

		if err := components.Telemetry.Start(ctx); err != nil {
			components.Logger.Warn("failed to start telemetry", "error", err)
			// Don't fail startup if telemetry fails
		}
		components.addCleanup(components.Telemetry.Stop)
	}

	components.Logger.Info("service initialization complete",
		"service", serviceName,
		"storage", components.Blob != nil,
		"deriver", components.Deriver != nil,
		"telemetry", components.Telemetry != nil,
	)

	return components, nil
}

// MustSetup is like Setup but panics on error
// Useful when the service can't recover from initialization failure
func MustSetup(ctx context.Context, serviceName string, opts ...Option) *Components {
	components, err := Setup(ctx, serviceName, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to setup service %s: %v", serviceName, err))
	}
	return components
}
