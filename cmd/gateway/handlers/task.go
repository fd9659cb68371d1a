package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lyzr/docgateway/cmd/gateway/middleware"
	"github.com/lyzr/docgateway/cmd/gateway/models"
	"github.com/lyzr/docgateway/cmd/gateway/service"
	"github.com/lyzr/docgateway/common/blob"
	"github.com/lyzr/docgateway/common/extract"
	"github.com/lyzr/docgateway/common/logger"
)

// DeriveFunc executes one derivation task against prepared text.
// Task-specific parameters come from the validated request payload.
type DeriveFunc func(ctx context.Context, text string, payload map[string]string) (map[string]any, error)

// DocumentPreparer runs the ingestion pipeline for a file path
type DocumentPreparer interface {
	Prepare(ctx context.Context, filePath string, maxChars int) (*service.PreparedDocument, error)
}

// TaskHandler runs the shared fetch, extract, limit, derive pipeline for a
// single derivation task. The six endpoints are six task descriptors over
// this one handler, not six copies of the pipeline.
type TaskHandler struct {
	task models.Task
	docs DocumentPreparer
	run  DeriveFunc
	log  *logger.Logger
}

// NewTaskHandler creates a handler for one derivation task
func NewTaskHandler(task models.Task, docs DocumentPreparer, run DeriveFunc, log *logger.Logger) *TaskHandler {
	return &TaskHandler{
		task: task,
		docs: docs,
		run:  run,
		log:  log,
	}
}

// Handle processes one task request end to end
func (h *TaskHandler) Handle(c echo.Context) error {
	ctx := c.Request().Context()
	payload := middleware.GetPayload(c)
	filePath := payload["file_path"]

	log := h.log.WithTask(h.task.Name).WithRequestID(uuid.New().String())
	log.Info("processing request", "file_path", filePath)

	doc, err := h.docs.Prepare(ctx, filePath, h.task.MaxChars)
	if err != nil {
		return h.respondPipelineError(c, log, err)
	}

	fields, err := h.run(ctx, doc.Text, payload)
	if err != nil {
		log.Error("derivation failed", "error", err)
		return c.JSON(http.StatusInternalServerError, models.Error(h.task.ErrorCode, err.Error()))
	}

	data := map[string]any{
		"file_path":       filePath,
		"file_properties": doc.Properties,
		"was_truncated":   doc.Truncated,
	}
	for k, v := range fields {
		data[k] = v
	}

	log.Info("request completed", "truncated", doc.Truncated)
	return c.JSON(http.StatusOK, models.Success(data, h.task.SuccessMessage))
}

// respondPipelineError maps typed pipeline failures to HTTP statuses and
// stable error codes. This is the single place that translation happens.
func (h *TaskHandler) respondPipelineError(c echo.Context, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, blob.ErrInvalidReference):
		log.Warn("invalid file path", "error", err)
		return c.JSON(http.StatusBadRequest, models.Error("invalid_file_path", "Invalid file path format"))

	case errors.Is(err, blob.ErrNotFound):
		log.Warn("file not found", "error", err)
		return c.JSON(http.StatusNotFound, models.Error("file_not_found", err.Error()))

	case errors.Is(err, extract.ErrEncrypted),
		errors.Is(err, extract.ErrNoText),
		errors.Is(err, extract.ErrCorrupt),
		errors.Is(err, extract.ErrUndecodable),
		errors.Is(err, extract.ErrEmptyText):
		log.Warn("document processing failed", "error", err)
		return c.JSON(http.StatusBadRequest, models.Error("processing_error", err.Error()))

	default:
		log.Error("unexpected pipeline failure", "error", err)
		return c.JSON(http.StatusInternalServerError, models.Error("internal_error", "An unexpected error occurred"))
	}
}
