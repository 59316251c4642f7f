package handlers

import (
	"encoding/json"

	"college-hub/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ContentHandler struct {
	contentRepo *repository.ContentRepository
	logger      *zap.Logger
}

func NewContentHandler(contentRepo *repository.ContentRepository, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		contentRepo: contentRepo,
		logger:      logger,
	}
}

// GetContent godoc
// @Summary Fetch the CMS content blob
// @Tags content
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/content [get]
func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	blob, err := h.contentRepo.Load()
	if err != nil {
		h.logger.Error("Failed to load content", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load content",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(blob)
}

// UpdateContent godoc
// @Summary Replace the CMS content blob
// @Tags content
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SubmitStatusResponse
// @Router /api/content [post]
func (h *ContentHandler) UpdateContent(c *fiber.Ctx) error {
	body := c.Body()
	if !json.Valid(body) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid JSON body",
		})
	}

	if err := h.contentRepo.Save(body); err != nil {
		h.logger.Error("Failed to save content", zap.Error(err))
		// The caller is the authenticated dashboard, so the store error
		// message is safe to return.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}
