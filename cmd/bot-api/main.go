package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/MuhamadAgungGumelar/pyme-bot-be/cmd/bot-api/docs"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/agent"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/datetime"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/maintenance"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/nlu"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/ratelimit"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/tenant"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/handlers"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/repositories"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/services"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/shared/utils"
)

// @title Pyme Bot API
// @version 1.0
// @description Rule-based chat assistant for small businesses (sales and reservations)
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.LogLevel, cfg.Env)
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("🚀 Starting bot-api")

	var store repositories.Store
	if cfg.UseMemoryStore {
		log.Warn().Msg("⚠️ USE_MEMORY_STORE=true, data is lost on restart")
		store = repositories.NewMemoryStore()
	} else {
		db := database.NewDB(cfg.DatabaseURL, cfg.Env)
		defer db.Close()
		store = repositories.NewStore(db.GORM)
	}

	loc := cfg.Location()
	delegate, providerName := newDelegate(cfg)

	tenants := tenant.NewResolver(store, store)
	dates := datetime.NewResolver(loc, delegate)
	engine := agent.NewEngine(store, tenants, delegate, loc)

	h := &handlers.Handlers{
		Health:      handlers.NewHealthHandler(providerName),
		Config:      handlers.NewConfigHandler(services.NewConfigService(store, tenants, cfg.PublicBaseURL)),
		Rules:       handlers.NewRuleHandler(services.NewRuleService(store, tenants)),
		Products:    handlers.NewProductHandler(services.NewProductService(store)),
		Appointment: handlers.NewAppointmentHandler(services.NewAppointmentService(store, tenants, dates, export.NewService())),
		Chat:        handlers.NewChatHandler(engine),
	}
	app := handlers.SetupRouter(h, newLimiter(cfg))

	scheduler := maintenance.NewScheduler()
	if err := scheduler.SchedulePrune(store, cfg.RetentionDays); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to schedule conversation pruning")
	}
	scheduler.Start()

	go func() {
		log.Info().Msgf("✅ bot-api running at :%s", cfg.Port)
		log.Info().Msgf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("❌ Server stopped")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("🛑 Shutting down...")
	scheduler.Stop()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("❌ Graceful shutdown failed")
	}
}

// newDelegate returns the LLM-backed delegate, or the no-op one when no
// provider key is configured.
func newDelegate(cfg *config.Config) (nlu.Delegate, string) {
	llmService, err := llm.NewService(llm.LoadProviderFromEnv())
	if err != nil {
		if llm.IsNotConfigured(err) {
			log.Warn().Msg("⚠️ No LLM configured, replies use the deterministic fallbacks only")
		} else {
			log.Error().Err(err).Msg("❌ Failed to initialize LLM, continuing without it")
		}
		return nlu.NoopDelegate{}, ""
	}

	log.Info().Str("provider", llmService.GetProviderName()).Dur("timeout", cfg.NLUTimeout).Msg("🤖 Using LLM provider")
	return nlu.NewLLMDelegate(llmService, cfg.NLUTimeout), llmService.GetProviderName()
}

func newLimiter(cfg *config.Config) ratelimit.Limiter {
	if cfg.RedisURL == "" {
		return ratelimit.NewMemoryLimiter(cfg.RatePerMinute)
	}

	client, err := ratelimit.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Error().Err(err).Msg("❌ Invalid REDIS_URL, using in-memory rate limiting")
		return ratelimit.NewMemoryLimiter(cfg.RatePerMinute)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("⚠️ Redis unreachable at startup, rate limiting fails open until it recovers")
	}
	log.Info().Int("per_minute", cfg.RatePerMinute).Msg("🚦 Redis-backed rate limiting")
	return ratelimit.NewRedisLimiter(client, cfg.RatePerMinute)
}
