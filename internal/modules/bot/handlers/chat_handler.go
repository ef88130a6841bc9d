package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/agent"
)

// ChatRequest is one message from the chat widget.
type ChatRequest struct {
	BotID     string `json:"bot_id"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type ChatHandler struct {
	engine *agent.Engine
}

func NewChatHandler(engine *agent.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

// Chat godoc
// @Summary Send a chat message
// @Description Resolves the message through the bot's rules, falling back to intent classification
// @Tags Chat
// @Accept json
// @Produce json
// @Param message body ChatRequest true "Message"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Bad chat payload")
	}

	reply, err := h.engine.HandleMessage(c.UserContext(), agent.Request{
		TenantID:  req.BotID,
		Message:   req.Message,
		SessionID: req.SessionID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"ok":         true,
		"reply":      reply.Text,
		"rule_id":    reply.RuleID,
		"match_kind": reply.MatchKind,
		"intent":     reply.Intent,
	})
}
