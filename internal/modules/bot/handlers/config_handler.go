package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/services"
)

type ConfigHandler struct {
	configService *services.ConfigService
}

func NewConfigHandler(configService *services.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// GetConfig godoc
// @Summary Get bot configuration
// @Description Returns the bot's mode, slot size and business profile, creating defaults on first access
// @Tags Config
// @Produce json
// @Param bot_id query string false "Bot ID" default(default)
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/config [get]
func (h *ConfigHandler) GetConfig(c *fiber.Ctx) error {
	cfg, err := h.configService.GetConfig(c.UserContext(), c.Query("bot_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "config": cfg})
}

// UpdateConfig godoc
// @Summary Update bot configuration
// @Description Partial update; omitted fields are left untouched
// @Tags Config
// @Accept json
// @Produce json
// @Param config body models.UpdateConfigRequest true "Config patch"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/config [post]
func (h *ConfigHandler) UpdateConfig(c *fiber.Ctx) error {
	var req models.UpdateConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Bad config payload")
	}

	cfg, err := h.configService.UpdateConfig(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "config": cfg})
}

// GetShareQR godoc
// @Summary Chat share QR code
// @Description PNG QR code pointing at the bot's public chat page
// @Tags Config
// @Produce image/png
// @Param bot_id query string false "Bot ID" default(default)
// @Param size query int false "Image size in pixels" default(256)
// @Success 200 {file} image/png
// @Failure 500 {object} map[string]interface{}
// @Router /api/config/qr [get]
func (h *ConfigHandler) GetShareQR(c *fiber.Ctx) error {
	png, err := h.configService.ShareQR(c.Query("bot_id"), c.QueryInt("size", services.DefaultQRSize))
	if err != nil {
		return respondError(c, err)
	}

	c.Set("Content-Type", "image/png")
	c.Set("Content-Disposition", "inline; filename=chat-qr.png")
	return c.Send(png)
}
