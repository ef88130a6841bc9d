package ratelimit

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_PerKeyBudget(t *testing.T) {
	l := NewMemoryLimiter(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, _ := l.Allow(ctx, "a")
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, "b")
	assert.True(t, ok, "other keys keep their own budget")
}

func TestRedisLimiter_WindowKey(t *testing.T) {
	l := NewRedisLimiter(nil, 10)
	l.now = func() time.Time { return time.Unix(600, 0) }
	assert.Equal(t, "ratelimit:1.2.3.4:10", l.windowKey("1.2.3.4"))
}

func TestRedisLimiter_UnreachableReturnsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	_, err := NewRedisLimiter(client, 10).Allow(context.Background(), "k")
	assert.Error(t, err)
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient("not a url")
	assert.Error(t, err)
}

type stubLimiter struct {
	allowed bool
	err     error
}

func (s stubLimiter) Allow(context.Context, string) (bool, error) { return s.allowed, s.err }

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		limiter Limiter
		status  int
	}{
		{"allowed", stubLimiter{allowed: true}, fiber.StatusOK},
		{"over budget", stubLimiter{allowed: false}, fiber.StatusTooManyRequests},
		{"limiter down", stubLimiter{err: errors.New("dial tcp: refused")}, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(Middleware(tt.limiter))
			app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
