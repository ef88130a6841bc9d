package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "LOG_LEVEL", "BOT_TIMEZONE", "NLU_TIMEOUT_SECONDS",
		"RATE_LIMIT_PER_MINUTE", "CONVERSATION_RETENTION_DAYS", "PUBLIC_BASE_URL", "USE_MEMORY_STORE",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultTimezone, cfg.Timezone)
	assert.Equal(t, DefaultNLUTimeout, cfg.NLUTimeout)
	assert.Equal(t, DefaultRatePerMinute, cfg.RatePerMinute)
	assert.Equal(t, DefaultRetentionDays, cfg.RetentionDays)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	assert.False(t, cfg.UseMemoryStore)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("NLU_TIMEOUT_SECONDS", "30")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("USE_MEMORY_STORE", "true")
	t.Setenv("PUBLIC_BASE_URL", "")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 9*time.Second, cfg.NLUTimeout, "timeout is clamped to single-digit seconds")
	assert.Equal(t, DefaultRatePerMinute, cfg.RatePerMinute)
	assert.True(t, cfg.UseMemoryStore)
	assert.Equal(t, "http://localhost:9090", cfg.PublicBaseURL)
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	cfg := &Config{Timezone: "Invalid/Zone"}
	assert.Equal(t, time.UTC, cfg.Location())
}
