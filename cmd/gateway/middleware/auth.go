package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lyzr/docgateway/cmd/gateway/models"
	"github.com/lyzr/docgateway/common/config"
	"github.com/lyzr/docgateway/common/logger"
)

// RequireAPIKey enforces the per-endpoint API key. The key may arrive in
// the X-API-Key header or as a bearer token in the Authorization header;
// the bearer prefix is stripped before comparison. Auth runs before field
// validation and before any downstream work.
func RequireAPIKey(path string, cfg *config.Config, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get("X-API-Key")
			if apiKey == "" {
				apiKey = c.Request().Header.Get(echo.HeaderAuthorization)
			}
			apiKey = strings.TrimPrefix(apiKey, "Bearer ")

			if apiKey == "" {
				log.Warn("missing API key", "endpoint", path)
				return c.JSON(http.StatusUnauthorized, models.Error(
					"API key required",
					"Please provide API key in X-API-Key header or Authorization header",
				))
			}

			expected, ok := cfg.EndpointKey(path)
			if !ok {
				log.Error("no API key configured for endpoint", "endpoint", path)
				return c.JSON(http.StatusInternalServerError, models.Error(
					"Endpoint not configured",
					"This endpoint is not properly configured",
				))
			}

			if apiKey != expected {
				log.Warn("invalid API key", "endpoint", path)
				return c.JSON(http.StatusForbidden, models.Error(
					"Invalid API key",
					"The provided API key is not valid for this endpoint",
				))
			}

			return next(c)
		}
	}
}
