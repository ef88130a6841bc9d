package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/ratelimit"
)

// BodyLimit caps request bodies at 512 KiB.
const BodyLimit = 512 * 1024

// Handlers groups every HTTP handler of the bot API.
type Handlers struct {
	Health      *HealthHandler
	Config      *ConfigHandler
	Rules       *RuleHandler
	Products    *ProductHandler
	Appointment *AppointmentHandler
	Chat        *ChatHandler
}

// SetupRouter builds the Fiber app. limiter may be nil to disable rate limiting.
func SetupRouter(h *Handlers, limiter ratelimit.Limiter) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "Pyme Bot API",
		BodyLimit: BodyLimit,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"ok": false, "error": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(requestid.New())
	app.Use(requestLogger())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/healthz", h.Health.GetHealth)

	api := app.Group("/api")
	if limiter != nil {
		api.Use(ratelimit.Middleware(limiter))
	}

	api.Get("/config", h.Config.GetConfig)
	api.Post("/config", h.Config.UpdateConfig)
	api.Get("/config/qr", h.Config.GetShareQR)

	api.Get("/rules", h.Rules.ListRules)
	api.Post("/rules", h.Rules.CreateRule)
	api.Post("/rules/restore-defaults", h.Rules.RestoreDefaults)
	api.Put("/rules/:id", h.Rules.UpdateRule)
	api.Delete("/rules/:id", h.Rules.DeleteRule)

	api.Get("/products", h.Products.ListProducts)
	api.Post("/products", h.Products.CreateProduct)

	api.Get("/appointments", h.Appointment.ListAppointments)
	api.Get("/appointments/available", h.Appointment.CheckAvailability)
	api.Get("/appointments/export", h.Appointment.ExportAppointments)
	api.Post("/appointments", h.Appointment.CreateAppointment)

	api.Post("/chat", h.Chat.Chat)

	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"ok": false, "error": "Not found"})
	})

	return app
}

// requestLogger attaches a request-scoped zerolog logger to the user context
// and logs one line per request.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)

		logger := log.With().Str("request_id", reqID).Logger()
		c.SetUserContext(logger.WithContext(c.UserContext()))

		err := c.Next()
		if err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		default:
			event = logger.Info()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("🌐 HTTP request")
		return nil
	}
}
