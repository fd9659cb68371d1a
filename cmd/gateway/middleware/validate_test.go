package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeValidate(t *testing.T, body string, required ...string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/translate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured map[string]string
	mw := ValidatePayload(required...)
	handler := mw(func(c echo.Context) error {
		captured = GetPayload(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return rec, captured
}

func TestValidatePayload_AllFieldsPresent(t *testing.T) {
	rec, payload := invokeValidate(t,
		`{"file_path": "demo/doc.txt", "target_language": "Hindi"}`,
		"file_path", "target_language",
	)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "demo/doc.txt", payload["file_path"])
	assert.Equal(t, "Hindi", payload["target_language"])
}

func TestValidatePayload_MissingField(t *testing.T) {
	rec, _ := invokeValidate(t,
		`{"file_path": "demo/doc.txt"}`,
		"file_path", "target_language",
	)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "required")
	assert.Contains(t, rec.Body.String(), "target_language")
}

func TestValidatePayload_NonStringRequiredField(t *testing.T) {
	rec, _ := invokeValidate(t,
		`{"file_path": "demo/doc.txt", "target_language": 123}`,
		"file_path", "target_language",
	)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "target_language")
	assert.Contains(t, rec.Body.String(), "must be a string")
}

func TestValidatePayload_EmptyBody(t *testing.T) {
	rec, _ := invokeValidate(t, "", "file_path")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidatePayload_MalformedJSON(t *testing.T) {
	rec, _ := invokeValidate(t, "{not json", "file_path")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
