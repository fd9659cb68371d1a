package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const serviceDescription = "Document Derivation Gateway"

var taskEndpoints = []string{
	"/summarize",
	"/sentiment",
	"/extract-keywords",
	"/translate",
	"/structure-data",
	"/detect-topics",
}

// MetaHandler serves the unauthenticated health and root endpoints
type MetaHandler struct{}

// NewMetaHandler creates a new meta handler
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Health reports service liveness
// GET /health
func (h *MetaHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   serviceDescription,
		"endpoints": taskEndpoints,
	})
}

// Root serves the API description document
// GET /
func (h *MetaHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service":     serviceDescription,
		"description": "REST gateway deriving summaries, sentiment, keywords, translations, structured data, and topics from documents in blob storage",
		"version":     "1.0.0",
		"endpoints": map[string]string{
			"health":           "/health",
			"summarize":        "/summarize",
			"sentiment":        "/sentiment",
			"extract_keywords": "/extract-keywords",
			"translate":        "/translate",
			"structure_data":   "/structure-data",
			"detect_topics":    "/detect-topics",
		},
		"authentication": "Each endpoint requires X-API-Key header with endpoint-specific API key",
		"documentation": map[string]any{
			"file_path_format":  "container/filename.ext or full blob URL",
			"supported_formats": []string{"PDF", "TXT", "MD", "CSV", "JSON", "XML"},
			"required_headers":  []string{"X-API-Key", "Content-Type: application/json"},
		},
	})
}
