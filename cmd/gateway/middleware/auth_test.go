package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyzr/docgateway/cmd/gateway/models"
	"github.com/lyzr/docgateway/common/config"
	"github.com/lyzr/docgateway/common/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			EndpointKeys: map[string]string{
				"/summarize": "summarize-key-123",
			},
		},
	}
}

func invokeAuth(t *testing.T, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"file_path":"demo/a.txt"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireAPIKey(path, testConfig(), logger.New("error", "json"))
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Envelope {
	t.Helper()

	var env models.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRequireAPIKey_MissingKey(t *testing.T) {
	rec := invokeAuth(t, "/summarize", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "API key required", env.Error)
}

func TestRequireAPIKey_WrongKey(t *testing.T) {
	rec := invokeAuth(t, "/summarize", map[string]string{"X-API-Key": "wrong-value"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Invalid API key", decodeEnvelope(t, rec).Error)
}

func TestRequireAPIKey_HeaderKey(t *testing.T) {
	rec := invokeAuth(t, "/summarize", map[string]string{"X-API-Key": "summarize-key-123"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAPIKey_BearerToken(t *testing.T) {
	rec := invokeAuth(t, "/summarize", map[string]string{"Authorization": "Bearer summarize-key-123"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

// A key that is valid for one endpoint must not open another; every
// endpoint key is distinct.
func TestRequireAPIKey_UnconfiguredEndpoint(t *testing.T) {
	rec := invokeAuth(t, "/sentiment", map[string]string{"X-API-Key": "summarize-key-123"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Endpoint not configured", decodeEnvelope(t, rec).Error)
}
