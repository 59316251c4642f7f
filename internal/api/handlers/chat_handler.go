package handlers

import (
	"errors"

	"college-hub/internal/dto"
	"college-hub/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Ask the college assistant
// @Description Resolve a free-text question via FAQ matching, the website snapshot and the generative model
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.ChatResponse
// @Failure 503 {object} dto.ChatResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	text, err := h.chatService.Answer(c.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrGeneratorDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ChatResponse{
				Response: "Chatbot is currently disabled (API Key missing).",
			})
		}
		// Generation failures get a fixed reply; the provider detail stays
		// in the logs.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ChatResponse{
			Response: "🤖 Scaling issues! Please try again later.",
		})
	}

	return c.JSON(dto.ChatResponse{Response: text})
}
