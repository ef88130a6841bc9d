package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTimezone        = "America/Argentina/Cordoba"
	DefaultNLUTimeout      = 8 * time.Second
	DefaultRatePerMinute   = 180
	DefaultRetentionDays   = 30
	maxNLUTimeoutInSeconds = 9
)

type Config struct {
	DatabaseURL    string
	Port           string
	Env            string
	LogLevel       string
	Timezone       string
	NLUTimeout     time.Duration
	RedisURL       string
	RatePerMinute  int
	RetentionDays  int
	PublicBaseURL  string
	UseMemoryStore bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           os.Getenv("PORT"),
		Env:            os.Getenv("ENV"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		Timezone:       os.Getenv("BOT_TIMEZONE"),
		RedisURL:       os.Getenv("REDIS_URL"),
		PublicBaseURL:  os.Getenv("PUBLIC_BASE_URL"),
		UseMemoryStore: os.Getenv("USE_MEMORY_STORE") == "true",
		NLUTimeout:     time.Duration(getEnvInt("NLU_TIMEOUT_SECONDS", 0)) * time.Second,
		RatePerMinute:  getEnvInt("RATE_LIMIT_PER_MINUTE", DefaultRatePerMinute),
		RetentionDays:  getEnvInt("CONVERSATION_RETENTION_DAYS", DefaultRetentionDays),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.Port
	}
	cfg.NLUTimeout = clampNLUTimeout(cfg.NLUTimeout)
	if cfg.RatePerMinute <= 0 {
		cfg.RatePerMinute = DefaultRatePerMinute
	}
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = DefaultRetentionDays
	}

	return cfg
}

// Location loads the tenant timezone, falling back to UTC when the tz database lacks it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", c.Timezone).Msg("⚠️ Unknown timezone, using UTC")
		return time.UTC
	}
	return loc
}

// delegate calls must stay within single-digit seconds
func clampNLUTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultNLUTimeout
	}
	if d > maxNLUTimeoutInSeconds*time.Second {
		return maxNLUTimeoutInSeconds * time.Second
	}
	return d
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Msg("⚠️ Invalid integer in environment, using default")
		return fallback
	}
	return v
}
