package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cv-analyzer/internal/models"
	"cv-analyzer/internal/services"
)

type ExportHandler struct {
	sessionStore  services.SessionStore
	exportService services.ExportService
}

func NewExportHandler(
	sessionStore services.SessionStore,
	exportService services.ExportService,
) *ExportHandler {
	return &ExportHandler{
		sessionStore:  sessionStore,
		exportService: exportService,
	}
}

// HandleSnapshotJSON handles GET /export/snapshot.json.
func (h *ExportHandler) HandleSnapshotJSON(c *fiber.Ctx) error {
	snapshot, errResp := h.snapshotForSession(c)
	if snapshot == nil {
		return errResp
	}

	data, err := h.exportService.SnapshotJSON(snapshot)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/json")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="candidate_profile.json"`)
	return c.Send(data)
}

// HandleSnapshotCSV handles GET /export/snapshot.csv.
func (h *ExportHandler) HandleSnapshotCSV(c *fiber.Ctx) error {
	snapshot, errResp := h.snapshotForSession(c)
	if snapshot == nil {
		return errResp
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="candidate_profile.csv"`)
	return c.SendString(h.exportService.SnapshotCSV(snapshot))
}

// HandleInterviewKit handles GET /export/interview-kit.txt.
func (h *ExportHandler) HandleInterviewKit(c *fiber.Ctx) error {
	result, errResp := h.resultForSession(c)
	if result == nil {
		return errResp
	}

	c.Set(fiber.HeaderContentType, "text/plain")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="interview_kit.txt"`)
	return c.SendString(h.exportService.InterviewKitText(result.InterviewKit))
}

func (h *ExportHandler) resultForSession(c *fiber.Ctx) (*models.AnalysisResult, error) {
	sessionID := c.Get("X-Session-ID")
	if sessionID == "" {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "X-Session-ID header is required",
		})
	}

	result, ok := h.sessionStore.GetResult(sessionID)
	if !ok {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no analysis result for this session",
		})
	}

	return result, nil
}

func (h *ExportHandler) snapshotForSession(c *fiber.Ctx) (*models.CandidateSnapshot, error) {
	result, errResp := h.resultForSession(c)
	if result == nil {
		return nil, errResp
	}

	if result.Snapshot == nil {
		return nil, c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "snapshot was not parsed; raw response available via /result",
		})
	}

	return result.Snapshot, nil
}
