package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	provider string
}

// NewHealthHandler reports provider as the configured language model, or "none".
func NewHealthHandler(provider string) *HealthHandler {
	if provider == "" {
		provider = "none"
	}
	return &HealthHandler{provider: provider}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /healthz [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":       true,
		"ts":       time.Now().UnixMilli(),
		"provider": h.provider,
	})
}
