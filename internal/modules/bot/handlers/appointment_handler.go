package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/services"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// ListAppointments godoc
// @Summary List appointments
// @Description Latest start first
// @Tags Appointments
// @Produce json
// @Param bot_id query string false "Bot ID" default(default)
// @Success 200 {array} models.Appointment
// @Router /api/appointments [get]
func (h *AppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	appts, err := h.appointmentService.ListAppointments(c.UserContext(), c.Query("bot_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appts)
}

// CheckAvailability godoc
// @Summary Check whether a start time is free
// @Description starts_at accepts "YYYY-MM-DD HH:mm" or phrases like "viernes a las 10"
// @Tags Appointments
// @Produce json
// @Param bot_id query string false "Bot ID" default(default)
// @Param starts_at query string true "Start time"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/appointments/available [get]
func (h *AppointmentHandler) CheckAvailability(c *fiber.Ctx) error {
	avail, err := h.appointmentService.CheckAvailability(c.UserContext(), c.Query("bot_id"), c.Query("starts_at"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"ok":           true,
		"available":    avail.Available,
		"starts_at":    avail.StartsAt,
		"slot_minutes": avail.SlotMinutes,
	})
}

// CreateAppointment godoc
// @Summary Book an appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Param appointment body models.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *fiber.Ctx) error {
	var req models.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Bad appointment payload")
	}

	appt, err := h.appointmentService.CreateAppointment(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "appointment": appt})
}

// ExportAppointments godoc
// @Summary Download appointments
// @Tags Appointments
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Produce application/pdf
// @Param bot_id query string false "Bot ID" default(default)
// @Param format query string false "xlsx, csv or pdf" default(xlsx)
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Router /api/appointments/export [get]
func (h *AppointmentHandler) ExportAppointments(c *fiber.Ctx) error {
	out, err := h.appointmentService.ExportAppointments(c.UserContext(), c.Query("bot_id"), c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}

	c.Set("Content-Type", out.ContentType)
	c.Set("Content-Disposition", "attachment; filename="+out.FileName)
	return c.Send(out.Data)
}
