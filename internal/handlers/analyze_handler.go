package handlers

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"cv-analyzer/internal/models"
	"cv-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer     services.AnalyzerService
	sessionStore services.SessionStore
	maxFileSize  int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	sessionStore services.SessionStore,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:     analyzer,
		sessionStore: sessionStore,
		maxFileSize:  maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze: multipart "cv" file plus a
// "job_description" field. The document bytes are read in-memory, never
// written anywhere, and the resulting artifacts replace whatever the session
// held before.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("cv")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cv file is required",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	jobDescription := c.FormValue("job_description")
	if strings.TrimSpace(jobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to open uploaded file: %v", err),
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read uploaded file: %v", err),
		})
	}

	doc := models.SourceDocument{
		Data:      data,
		MediaType: documentMediaType(fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType)),
	}

	result, err := h.analyzer.AnalyzeDocument(c.Context(), doc, jobDescription)
	if err != nil {
		status := fiber.StatusUnprocessableEntity
		if errors.Is(err, services.ErrUnsupportedFormat) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	sessionID := sessionIDFromRequest(c, h.sessionStore)
	h.sessionStore.SetResult(sessionID, result)

	return c.JSON(models.AnalyzeResponse{
		SessionID: sessionID,
		Result:    result,
	})
}

// documentMediaType resolves the declared media type of an upload, falling
// back to the file extension when the client sent none or a generic one.
func documentMediaType(filename, contentType string) string {
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return services.MediaTypePDF
	case ".docx":
		return services.MediaTypeDocx
	case ".txt":
		return services.MediaTypeText
	default:
		return contentType
	}
}

func sessionIDFromRequest(c *fiber.Ctx, store services.SessionStore) string {
	if id := c.Get("X-Session-ID"); id != "" {
		return id
	}
	return store.NewSession()
}
