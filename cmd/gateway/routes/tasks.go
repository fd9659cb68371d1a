package routes

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/lyzr/docgateway/cmd/gateway/container"
	"github.com/lyzr/docgateway/cmd/gateway/handlers"
	"github.com/lyzr/docgateway/cmd/gateway/middleware"
	"github.com/lyzr/docgateway/cmd/gateway/models"
	"github.com/lyzr/docgateway/common/extract"
)

// RegisterTaskRoutes wires the six derivation endpoints. Each is the same
// pipeline handler with its own task descriptor; auth runs before field
// validation on every route.
func RegisterTaskRoutes(e *echo.Echo, c *container.Container) {
	deriver := c.Components.Deriver

	tasks := []struct {
		task models.Task
		run  handlers.DeriveFunc
	}{
		{
			task: models.Task{
				Name:           "summarize",
				Path:           "/summarize",
				RequiredFields: []string{"file_path"},
				MaxChars:       extract.DefaultMaxChars,
				ErrorCode:      "summarization_failed",
				SuccessMessage: "Document summarized successfully",
			},
			run: func(ctx context.Context, text string, _ map[string]string) (map[string]any, error) {
				result, err := deriver.Summarize(ctx, text)
				if err != nil {
					return nil, err
				}
				return result.Fields(), nil
			},
		},
		{
			task: models.Task{
				Name:           "sentiment",
				Path:           "/sentiment",
				RequiredFields: []string{"file_path"},
				MaxChars:       extract.DefaultMaxChars,
				ErrorCode:      "sentiment_analysis_failed",
				SuccessMessage: "Sentiment analysis completed successfully",
			},
			run: func(ctx context.Context, text string, _ map[string]string) (map[string]any, error) {
				result, err := deriver.AnalyzeSentiment(ctx, text)
				if err != nil {
					return nil, err
				}
				return result.Fields(), nil
			},
		},
		{
			task: models.Task{
				Name:           "extract-keywords",
				Path:           "/extract-keywords",
				RequiredFields: []string{"file_path"},
				MaxChars:       extract.DefaultMaxChars,
				ErrorCode:      "keyword_extraction_failed",
				SuccessMessage: "Keywords extracted successfully",
			},
			run: func(ctx context.Context, text string, _ map[string]string) (map[string]any, error) {
				result, err := deriver.ExtractKeywords(ctx, text)
				if err != nil {
					return nil, err
				}
				return result.Fields(), nil
			},
		},
		{
			task: models.Task{
				Name:           "translate",
				Path:           "/translate",
				RequiredFields: []string{"file_path", "target_language"},
				MaxChars:       extract.TranslationMaxChars,
				ErrorCode:      "translation_failed",
				SuccessMessage: "Document translated successfully",
			},
			run: func(ctx context.Context, text string, payload map[string]string) (map[string]any, error) {
				result, err := deriver.Translate(ctx, text, payload["target_language"])
				if err != nil {
					return nil, err
				}
				return result.Fields(), nil
			},
		},
		{
			task: models.Task{
				Name:           "structure-data",
				Path:           "/structure-data",
				RequiredFields: []string{"file_path"},
				MaxChars:       extract.DefaultMaxChars,
				ErrorCode:      "data_structuring_failed",
				SuccessMessage: "Structured data extracted successfully",
			},
			run: func(ctx context.Context, text string, _ map[string]string) (map[string]any, error) {
				result, err := deriver.StructureData(ctx, text)
				if err != nil {
					return nil, err
				}
				return result.Fields(), nil
			},
		},
		{
			task: models.Task{
				Name:           "detect-topics",
				Path:           "/detect-topics",
				RequiredFields: []string{"file_path"},
				MaxChars:       extract.DefaultMaxChars,
				ErrorCode:      "topic_detection_failed",
				SuccessMessage: "Topics detected successfully",
			},
			run: func(ctx context.Context, text string, _ map[string]string) (map[string]any, error) {
				result, err := deriver.DetectTopics(ctx, text)
				if err != nil {
					return nil, err
				}
				return result.Fields(), nil
			},
		},
	}

	for _, t := range tasks {
		h := handlers.NewTaskHandler(t.task, c.Documents, t.run, c.Components.Logger)
		e.POST(t.task.Path, h.Handle,
			middleware.RequireAPIKey(t.task.Path, c.Components.Config, c.Components.Logger),
			middleware.ValidatePayload(t.task.RequiredFields...),
		)
	}
}

// RegisterMetaRoutes wires the unauthenticated health and root endpoints
func RegisterMetaRoutes(e *echo.Echo) {
	h := handlers.NewMetaHandler()
	e.GET("/health", h.Health)
	e.GET("/", h.Root)
}
