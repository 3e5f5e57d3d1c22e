package handler

import (
	"nextel-storefront-be/internal/pkg/logger"
	internalWS "nextel-storefront-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ChatStreamHandler upgrades chat clients to a websocket subscribed to one
// conversation. Chat sessions are anonymous, so the handshake carries the
// conversation id rather than a token.
type ChatStreamHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewChatStreamHandler(hub *internalWS.Hub, log logger.ILogger) *ChatStreamHandler {
	return &ChatStreamHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *ChatStreamHandler) ServeWs(c *fiber.Ctx) error {
	conversationId, err := uuid.Parse(c.Query("conversation_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing or invalid conversation_id",
		})
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("ChatStreamHandler", "websocket session started", map[string]interface{}{
			"conversation_id": conversationId,
		})
		internalWS.ServeWs(h.hub, conn, conversationId)
		h.logger.Info("ChatStreamHandler", "websocket session ended", map[string]interface{}{
			"conversation_id": conversationId,
		})
	})(c)
}

func (h *ChatStreamHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/chat/stream", h.ServeWs)
}
