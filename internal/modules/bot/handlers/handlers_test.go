package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/agent"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/datetime"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/nlu"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/ratelimit"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/tenant"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/repositories"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/services"
)

func newTestApp(t *testing.T, limiter ratelimit.Limiter) (*fiber.App, *repositories.MemoryStore) {
	t.Helper()
	loc, err := time.LoadLocation("America/Argentina/Cordoba")
	require.NoError(t, err)
	monday := func() time.Time { return time.Date(2026, 10, 12, 10, 0, 0, 0, loc) }

	store := repositories.NewMemoryStore()
	tenants := tenant.NewResolver(store, store)
	dates := datetime.NewResolver(loc, nil).WithClock(monday)
	engine := agent.NewEngine(store, tenants, nlu.NoopDelegate{}, loc).WithClock(monday)

	h := &Handlers{
		Health:      NewHealthHandler(""),
		Config:      NewConfigHandler(services.NewConfigService(store, tenants, "http://localhost:8080")),
		Rules:       NewRuleHandler(services.NewRuleService(store, tenants)),
		Products:    NewProductHandler(services.NewProductService(store)),
		Appointment: NewAppointmentHandler(services.NewAppointmentService(store, tenants, dates, export.NewService())),
		Chat:        NewChatHandler(engine),
	}
	return SetupRouter(h, limiter), store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &out)
	return resp, out
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, body := doJSON(t, app, "GET", "/healthz", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "none", body["provider"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestUnknownAPIRoute(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, body := doJSON(t, app, "GET", "/api/nope", nil)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Not found", body["error"])
}

func TestConfigEndpoints(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, body := doJSON(t, app, "GET", "/api/config?bot_id=shop", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cfg := body["config"].(map[string]interface{})
	assert.Equal(t, "shop", cfg["bot_id"])
	assert.Equal(t, models.ModeSales, cfg["mode"])

	resp, _ = doJSON(t, app, "POST", "/api/config", map[string]interface{}{"bot_id": "shop", "mode": "delivery"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/config", map[string]interface{}{"bot_id": "shop", "slot_minutes": 500})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body = doJSON(t, app, "POST", "/api/config", map[string]interface{}{"bot_id": "shop", "mode": "reservations", "hours": "9 a 18"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cfg = body["config"].(map[string]interface{})
	assert.Equal(t, models.ModeReservations, cfg["mode"])
	assert.Equal(t, "9 a 18", cfg["hours"])
}

func TestConfigQR(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/config/qr?bot_id=shop&size=128", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))
}

func TestRuleEndpoints(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, body := doJSON(t, app, "POST", "/api/rules", map[string]interface{}{
		"bot_id":   "shop",
		"mode":     "sales",
		"triggers": []string{"envio"},
		"action":   "Enviamos a todo el país",
		"priority": 95,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := int(body["rule"].(map[string]interface{})["id"].(float64))

	resp, body = doJSON(t, app, "POST", "/api/chat", map[string]interface{}{"bot_id": "shop", "message": "hacen envio?"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Enviamos a todo el país", body["reply"])
	assert.Equal(t, float64(id), body["rule_id"])

	resp, _ = doJSON(t, app, "PUT", "/api/rules/abc", map[string]interface{}{"mode": "sales", "action": "x"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/api/rules/99999", map[string]interface{}{"bot_id": "shop", "mode": "sales", "action": "x"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	path := "/api/rules/" + strconv.Itoa(id)
	resp, _ = doJSON(t, app, "DELETE", path+"?bot_id=shop", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, "DELETE", path+"?bot_id=shop", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/rules/restore-defaults", map[string]interface{}{"bot_id": "shop"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req := httptest.NewRequest("GET", "/api/rules?bot_id=shop&mode=common", nil)
	listResp, err := app.Test(req)
	require.NoError(t, err)
	var rules []models.BusinessRule
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&rules))
	require.NotEmpty(t, rules)
	for _, r := range rules {
		assert.Equal(t, models.ModeCommon, r.Mode)
	}
}

func TestProductEndpoints(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, _ := doJSON(t, app, "POST", "/api/products", map[string]interface{}{"bot_id": "shop", "name": "", "price": 10, "stock": 1})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/products", map[string]interface{}{"bot_id": "shop", "name": "Yerba", "price": -1, "stock": 1})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body := doJSON(t, app, "POST", "/api/products", map[string]interface{}{"bot_id": "shop", "name": "Yerba", "price": 2500, "stock": 12})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Yerba", body["product"].(map[string]interface{})["name"])

	listResp, err := app.Test(httptest.NewRequest("GET", "/api/products?bot_id=shop", nil))
	require.NoError(t, err)
	var products []models.Product
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, 2500.0, products[0].Price)
}

func TestAppointmentEndpoints(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, _ := doJSON(t, app, "POST", "/api/appointments", map[string]interface{}{"bot_id": "shop", "customer": "Ana", "starts_at": "2026"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body := doJSON(t, app, "POST", "/api/appointments", map[string]interface{}{"bot_id": "shop", "customer": "Ana", "starts_at": "algún día"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, services.ErrInvalidDate.Error(), body["error"])

	resp, _ = doJSON(t, app, "POST", "/api/appointments", map[string]interface{}{"bot_id": "shop", "customer": "Ana", "starts_at": "viernes a las 10"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, app, "POST", "/api/appointments", map[string]interface{}{"bot_id": "shop", "customer": "Bea", "starts_at": "2026-10-16 10:15"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Horario no disponible", body["error"])

	resp, body = doJSON(t, app, "GET", "/api/appointments/available?bot_id=shop&starts_at=2026-10-16%2010:15", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["available"])

	resp, body = doJSON(t, app, "GET", "/api/appointments/available?bot_id=shop&starts_at=2026-10-16%2011:00", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["available"])

	listResp, err := app.Test(httptest.NewRequest("GET", "/api/appointments?bot_id=shop", nil))
	require.NoError(t, err)
	var appts []models.Appointment
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&appts))
	require.Len(t, appts, 1)
	assert.Equal(t, "Ana", appts[0].Customer)
}

func TestAppointmentExport(t *testing.T) {
	app, store := newTestApp(t, nil)
	require.NoError(t, store.CreateAppointment(context.Background(), &models.Appointment{
		TenantID: "shop",
		Customer: "Ana",
		StartsAt: time.Date(2026, 10, 16, 13, 0, 0, 0, time.UTC),
	}, time.Time{}, time.Time{}))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/appointments/export?bot_id=shop&format=csv", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "attachment; filename=turnos-shop.csv", resp.Header.Get("Content-Disposition"))
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Ana,2026-10-16,10:00")

	resp, err = app.Test(httptest.NewRequest("GET", "/api/appointments/export?bot_id=shop", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))

	resp, _ = doJSON(t, app, "GET", "/api/appointments/export?format=docx", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestChatOffline(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, body := doJSON(t, app, "POST", "/api/chat", map[string]interface{}{"bot_id": "shop", "message": "necesito ayuda", "session_id": "abc"})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "No tengo productos cargados.", body["reply"])
	assert.Nil(t, body["rule_id"])
	assert.Equal(t, "none", body["match_kind"])
}

func TestChatBadPayload(t *testing.T) {
	app, _ := newTestApp(t, nil)

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRateLimitAppliesToAPIOnly(t *testing.T) {
	app, _ := newTestApp(t, ratelimit.NewMemoryLimiter(1))

	resp, _ := doJSON(t, app, "GET", "/api/products", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, "GET", "/api/products", nil)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/healthz", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
