package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cv-analyzer/internal/models"
	"cv-analyzer/internal/services"
)

type ResultHandler struct {
	sessionStore services.SessionStore
}

func NewResultHandler(sessionStore services.SessionStore) *ResultHandler {
	return &ResultHandler{
		sessionStore: sessionStore,
	}
}

// HandleGetResult handles GET /result: the latest analysis for the session.
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	sessionID := c.Get("X-Session-ID")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "X-Session-ID header is required",
		})
	}

	result, ok := h.sessionStore.GetResult(sessionID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no analysis result for this session",
		})
	}

	return c.JSON(models.ResultResponse{
		SessionID: sessionID,
		Complete:  result.State == models.StateComplete,
		Result:    result,
	})
}

// HandleClearSession handles DELETE /result: drops the session's result.
func (h *ResultHandler) HandleClearSession(c *fiber.Ctx) error {
	sessionID := c.Get("X-Session-ID")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "X-Session-ID header is required",
		})
	}

	h.sessionStore.Clear(sessionID)

	return c.JSON(fiber.Map{
		"message": "session cleared",
	})
}
