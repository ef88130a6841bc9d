package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/scheduling"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

func TestMemoryStore_GetOrCreateConfigOnce(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	cfg, created, err := store.GetOrCreateConfig(ctx, "demo")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.DefaultMode, cfg.Mode)
	assert.Equal(t, models.DefaultSlotMinutes, cfg.SlotMinutes)

	_, created, err = store.GetOrCreateConfig(ctx, "demo")
	require.NoError(t, err)
	assert.False(t, created)

	updated, err := store.UpdateConfig(ctx, "demo", map[string]interface{}{"mode": models.ModeReservations, "slot_minutes": 45})
	require.NoError(t, err)
	assert.Equal(t, models.ModeReservations, updated.Mode)
	assert.Equal(t, 45, updated.SlotMinutes)

	_, err = store.UpdateConfig(ctx, "missing", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Rules(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, r := range []models.BusinessRule{
		{TenantID: "demo", Mode: models.ModeSales, Priority: 10, Triggers: datatypes.JSON(`["a"]`)},
		{TenantID: "demo", Mode: models.ModeCommon, Priority: 90},
		{TenantID: "demo", Mode: models.ModeReservations, Priority: 50},
		{TenantID: "other", Mode: models.ModeSales, Priority: 100},
	} {
		rule := r
		require.NoError(t, store.CreateRule(ctx, &rule))
	}

	rules, err := store.ListRules(ctx, "demo", []string{models.ModeSales, models.ModeCommon})
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, models.ModeCommon, rules[0].Mode)

	all, err := store.ListRules(ctx, "demo", nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	assert.ErrorIs(t, store.DeleteRule(ctx, "demo", rules[0].ID+100), ErrNotFound)
	assert.ErrorIs(t, store.UpdateRule(ctx, &models.BusinessRule{ID: 4, TenantID: "demo"}), ErrNotFound)

	require.NoError(t, store.ReplaceRules(ctx, "demo", []models.BusinessRule{{Mode: models.ModeSales, Priority: 1}}))
	all, err = store.ListRules(ctx, "demo", nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	others, err := store.ListRules(ctx, "other", nil)
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestMemoryStore_Products(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, name := range []string{"Notebook", "Mouse", "Notebook Lenovo"} {
		require.NoError(t, store.CreateProduct(ctx, &models.Product{TenantID: "demo", Name: name, Price: 10, Stock: 1}))
	}

	names, err := store.ListCatalog(ctx, "demo", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Notebook Lenovo", "Mouse"}, names)

	p, err := store.FindProductByName(ctx, "demo", "MOUSE")
	require.NoError(t, err)
	assert.Equal(t, "Mouse", p.Name)

	_, err = store.FindProductByName(ctx, "demo", "Teclado")
	assert.ErrorIs(t, err, ErrNotFound)

	best, err := store.FindBestMatch(ctx, "demo", "tenes notebook?")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "Notebook Lenovo", best.Name)
}

func TestMemoryStore_Appointments(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	at := time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC)

	from, to := scheduling.Window(at, 30)
	require.NoError(t, store.CreateAppointment(ctx, &models.Appointment{TenantID: "demo", Customer: "Ana", StartsAt: at}, from, to))

	from, to = scheduling.Window(at.Add(30*time.Minute), 30)
	err := store.CreateAppointment(ctx, &models.Appointment{TenantID: "demo", Customer: "Luis", StartsAt: at.Add(30 * time.Minute)}, from, to)
	assert.ErrorIs(t, err, scheduling.ErrSlotUnavailable)

	clash, err := store.HasConflict(ctx, "demo", at.Add(31*time.Minute), at.Add(90*time.Minute))
	require.NoError(t, err)
	assert.False(t, clash)

	list, err := store.ListAppointments(ctx, "demo")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMemoryStore_PruneConversations(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.LogConversation(ctx, &models.Conversation{TenantID: "demo", CreatedAt: time.Now().AddDate(0, 0, -40)}))
	require.NoError(t, store.LogConversation(ctx, &models.Conversation{TenantID: "demo"}))

	n, err := store.PruneConversations(ctx, time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Len(t, store.Conversations("demo"), 1)
}
