package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/services"
)

type RuleHandler struct {
	ruleService *services.RuleService
}

func NewRuleHandler(ruleService *services.RuleService) *RuleHandler {
	return &RuleHandler{ruleService: ruleService}
}

// ListRules godoc
// @Summary List business rules
// @Tags Rules
// @Produce json
// @Param bot_id query string false "Bot ID" default(default)
// @Param mode query string false "Only rules of this mode (sales, reservations, common)"
// @Success 200 {array} models.BusinessRule
// @Failure 500 {object} map[string]interface{}
// @Router /api/rules [get]
func (h *RuleHandler) ListRules(c *fiber.Ctx) error {
	rules, err := h.ruleService.ListRules(c.UserContext(), c.Query("bot_id"), c.Query("mode"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rules)
}

// CreateRule godoc
// @Summary Create a business rule
// @Tags Rules
// @Accept json
// @Produce json
// @Param rule body models.RuleRequest true "Rule"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/rules [post]
func (h *RuleHandler) CreateRule(c *fiber.Ctx) error {
	var req models.RuleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Bad rule payload")
	}

	rule, err := h.ruleService.CreateRule(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "rule": rule})
}

// UpdateRule godoc
// @Summary Replace a business rule
// @Tags Rules
// @Accept json
// @Produce json
// @Param id path int true "Rule ID"
// @Param rule body models.RuleRequest true "Rule"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/rules/{id} [put]
func (h *RuleHandler) UpdateRule(c *fiber.Ctx) error {
	id, err := ruleID(c)
	if err != nil {
		return badRequest(c, "Invalid rule id")
	}
	var req models.RuleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Bad rule payload")
	}

	rule, err := h.ruleService.UpdateRule(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "rule": rule})
}

// DeleteRule godoc
// @Summary Delete a business rule
// @Tags Rules
// @Produce json
// @Param id path int true "Rule ID"
// @Param bot_id query string false "Bot ID" default(default)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/rules/{id} [delete]
func (h *RuleHandler) DeleteRule(c *fiber.Ctx) error {
	id, err := ruleID(c)
	if err != nil {
		return badRequest(c, "Invalid rule id")
	}
	if err := h.ruleService.DeleteRule(c.UserContext(), c.Query("bot_id"), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// RestoreDefaults godoc
// @Summary Restore the default rule set
// @Description Deletes every rule of the bot and re-seeds the defaults
// @Tags Rules
// @Accept json
// @Produce json
// @Param data body object{bot_id=string} false "Bot"
// @Success 200 {object} map[string]interface{}
// @Router /api/rules/restore-defaults [post]
func (h *RuleHandler) RestoreDefaults(c *fiber.Ctx) error {
	var req struct {
		BotID string `json:"bot_id"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Bad payload")
		}
	}

	if err := h.ruleService.RestoreDefaults(c.UserContext(), req.BotID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func ruleID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	return uint(id), err
}
