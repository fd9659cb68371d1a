package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/lyzr/docgateway/cmd/gateway/container"
	"github.com/lyzr/docgateway/cmd/gateway/models"
	"github.com/lyzr/docgateway/cmd/gateway/routes"
	"github.com/lyzr/docgateway/common/bootstrap"
	"github.com/lyzr/docgateway/common/logger"
	"github.com/lyzr/docgateway/common/server"
)

func main() {
	ctx := context.Background()

	// Bootstrap common components (config, logger, blob storage, deriver)
	components, err := bootstrap.Setup(ctx, "gateway")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap gateway: %v\n", err)
		os.Exit(1)
	}
	defer components.Shutdown(ctx)

	// Initialize service container (singleton pattern - all services created once)
	serviceContainer, err := container.NewContainer(components)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize service container: %v\n", err)
		os.Exit(1)
	}

	// Initialize Echo server
	e := setupEcho(components.Logger)

	// Setup middleware
	setupMiddleware(e)

	// Register all routes
	routes.RegisterMetaRoutes(e)
	routes.RegisterTaskRoutes(e, serviceContainer)

	// Start server with graceful shutdown
	srv := server.New("gateway", components.Config.Service.Port, e, components.Logger)
	if err := srv.Start(); err != nil {
		components.Logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// setupEcho initializes the Echo server with basic configuration
func setupEcho(log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler(log)
	return e
}

// setupMiddleware configures all middleware for the Echo server
func setupMiddleware(e *echo.Echo) {
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
}

// errorHandler renders routing-level failures (unknown path, wrong method,
// panics surfaced by Recover) in the same envelope as the task endpoints.
// Exception internals never reach the caller; they are only logged.
func errorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
		}

		var env models.Envelope
		switch code {
		case http.StatusNotFound:
			env = models.Error("not_found", "The requested endpoint was not found")
		case http.StatusMethodNotAllowed:
			env = models.Error("method_not_allowed", "The request method is not allowed for this endpoint")
		default:
			log.Error("unhandled error", "path", c.Request().URL.Path, "error", err)
			code = http.StatusInternalServerError
			env = models.Error("internal_server_error", "An internal server error occurred")
		}

		if jsonErr := c.JSON(code, env); jsonErr != nil {
			log.Error("failed to write error response", "error", jsonErr)
		}
	}
}
