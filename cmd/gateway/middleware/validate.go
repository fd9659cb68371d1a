package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lyzr/docgateway/cmd/gateway/models"
)

// PayloadKey is the echo context key holding the validated request payload
const PayloadKey = "payload"

// ValidatePayload parses the JSON body once, checks required fields, and
// stores the parsed payload in the request context for the handler.
// Runs after auth; no field is inspected for unauthenticated callers.
func ValidatePayload(required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var body map[string]any
			if err := c.Bind(&body); err != nil || body == nil {
				return c.JSON(http.StatusBadRequest, models.Error(
					"Invalid request",
					"Request must contain JSON data",
				))
			}

			var missing []string
			for _, field := range required {
				v, ok := body[field]
				if !ok {
					missing = append(missing, field)
					continue
				}
				// A number or object here would silently degrade to ""
				// downstream; reject it at the boundary instead.
				if _, ok := v.(string); !ok {
					return c.JSON(http.StatusBadRequest, models.Error(
						"Invalid request",
						fmt.Sprintf("Field %s must be a string", field),
					))
				}
			}
			if len(missing) > 0 {
				return c.JSON(http.StatusBadRequest, models.Error(
					"Missing required fields",
					fmt.Sprintf("The following fields are required: %s", strings.Join(missing, ", ")),
				))
			}

			payload := make(map[string]string, len(body))
			for k, v := range body {
				if s, ok := v.(string); ok {
					payload[k] = s
				}
			}

			c.Set(PayloadKey, payload)
			return next(c)
		}
	}
}

// GetPayload returns the validated request payload stored by ValidatePayload
func GetPayload(c echo.Context) map[string]string {
	if payload, ok := c.Get(PayloadKey).(map[string]string); ok {
		return payload
	}
	return map[string]string{}
}
