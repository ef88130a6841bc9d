package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/scheduling"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/repositories"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/services"
)

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": msg})
}

// respondError maps service errors to status codes. Anything unrecognised is
// a persistence failure and is logged.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, services.ErrInvalid), errors.Is(err, services.ErrInvalidDate):
		status = fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrNotFound):
		status = fiber.StatusNotFound
		msg = "Not found"
	case errors.Is(err, scheduling.ErrSlotUnavailable):
		status = fiber.StatusConflict
		msg = "Horario no disponible"
	default:
		zerolog.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("❌ Request failed")
	}

	return c.Status(status).JSON(fiber.Map{"ok": false, "error": msg})
}
