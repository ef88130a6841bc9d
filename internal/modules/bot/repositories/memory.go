package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/catalog"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/scheduling"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

// MemoryStore implements Store in process memory, for demos and tests.
type MemoryStore struct {
	configs       map[string]*models.BotConfig
	rules         map[uint]*models.BusinessRule
	products      map[uint]*models.Product
	appointments  []models.Appointment
	conversations []models.Conversation

	// Mutexes for thread safety
	configMu       sync.Mutex
	ruleMu         sync.RWMutex
	productMu      sync.RWMutex
	appointmentMu  sync.Mutex
	conversationMu sync.Mutex

	// Counters for ID generation
	ruleCounter    uint
	productCounter uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		configs:  make(map[string]*models.BotConfig),
		rules:    make(map[uint]*models.BusinessRule),
		products: make(map[uint]*models.Product),
	}
}

// Config operations
func (m *MemoryStore) GetOrCreateConfig(_ context.Context, tenantID string) (*models.BotConfig, bool, error) {
	m.configMu.Lock()
	defer m.configMu.Unlock()

	if cfg, ok := m.configs[tenantID]; ok {
		out := *cfg
		return &out, false, nil
	}

	now := time.Now()
	cfg := models.NewDefaultConfig(tenantID)
	cfg.CreatedAt = now
	cfg.UpdatedAt = now
	m.configs[tenantID] = cfg

	out := *cfg
	return &out, true, nil
}

func (m *MemoryStore) UpdateConfig(_ context.Context, tenantID string, updates map[string]interface{}) (*models.BotConfig, error) {
	m.configMu.Lock()
	defer m.configMu.Unlock()

	cfg, ok := m.configs[tenantID]
	if !ok {
		return nil, ErrNotFound
	}

	text := map[string]*string{
		"mode":                &cfg.Mode,
		"name":                &cfg.Name,
		"address":             &cfg.Address,
		"hours":               &cfg.Hours,
		"phone":               &cfg.Phone,
		"payment_methods":     &cfg.PaymentMethods,
		"cash_discount":       &cfg.CashDiscount,
		"service_list":        &cfg.ServiceList,
		"cancellation_policy": &cfg.CancellationPolicy,
	}
	for column, v := range updates {
		if dst, ok := text[column]; ok {
			if s, ok := v.(string); ok {
				*dst = s
			}
			continue
		}
		if column == "slot_minutes" {
			if n, ok := v.(int); ok {
				cfg.SlotMinutes = n
			}
		}
	}
	cfg.UpdatedAt = time.Now()

	out := *cfg
	return &out, nil
}

func (m *MemoryStore) MarkRulesSeeded(_ context.Context, tenantID string, at time.Time) error {
	m.configMu.Lock()
	defer m.configMu.Unlock()

	cfg, ok := m.configs[tenantID]
	if !ok {
		return ErrNotFound
	}
	cfg.RulesSeededAt = &at
	return nil
}

// Rule operations
func (m *MemoryStore) ListRules(_ context.Context, tenantID string, modes []string) ([]models.BusinessRule, error) {
	m.ruleMu.RLock()
	defer m.ruleMu.RUnlock()

	wanted := make(map[string]bool, len(modes))
	for _, mode := range modes {
		wanted[mode] = true
	}

	var out []models.BusinessRule
	for _, r := range m.rules {
		if r.TenantID != tenantID {
			continue
		}
		if len(wanted) > 0 && !wanted[r.Mode] {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemoryStore) CreateRule(_ context.Context, rule *models.BusinessRule) error {
	m.ruleMu.Lock()
	defer m.ruleMu.Unlock()

	m.insertRuleLocked(rule)
	return nil
}

func (m *MemoryStore) insertRuleLocked(rule *models.BusinessRule) {
	m.ruleCounter++
	now := time.Now()
	rule.ID = m.ruleCounter
	rule.CreatedAt = now
	rule.UpdatedAt = now

	stored := *rule
	m.rules[rule.ID] = &stored
}

func (m *MemoryStore) UpdateRule(_ context.Context, rule *models.BusinessRule) error {
	m.ruleMu.Lock()
	defer m.ruleMu.Unlock()

	existing, ok := m.rules[rule.ID]
	if !ok || existing.TenantID != rule.TenantID {
		return ErrNotFound
	}
	existing.Mode = rule.Mode
	existing.Condition = rule.Condition
	existing.Triggers = rule.Triggers
	existing.Action = rule.Action
	existing.Priority = rule.Priority
	existing.UpdatedAt = time.Now()

	*rule = *existing
	return nil
}

func (m *MemoryStore) DeleteRule(_ context.Context, tenantID string, id uint) error {
	m.ruleMu.Lock()
	defer m.ruleMu.Unlock()

	existing, ok := m.rules[id]
	if !ok || existing.TenantID != tenantID {
		return ErrNotFound
	}
	delete(m.rules, id)
	return nil
}

func (m *MemoryStore) ReplaceRules(_ context.Context, tenantID string, rules []models.BusinessRule) error {
	m.ruleMu.Lock()
	defer m.ruleMu.Unlock()

	for id, r := range m.rules {
		if r.TenantID == tenantID {
			delete(m.rules, id)
		}
	}
	for i := range rules {
		rules[i].TenantID = tenantID
		m.insertRuleLocked(&rules[i])
	}
	return nil
}

// Product operations
func (m *MemoryStore) ListProducts(_ context.Context, tenantID string) ([]models.Product, error) {
	m.productMu.RLock()
	defer m.productMu.RUnlock()

	var out []models.Product
	for _, p := range m.products {
		if p.TenantID == tenantID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *MemoryStore) CreateProduct(_ context.Context, product *models.Product) error {
	m.productMu.Lock()
	defer m.productMu.Unlock()

	m.productCounter++
	now := time.Now()
	product.ID = m.productCounter
	product.CreatedAt = now
	product.UpdatedAt = now

	stored := *product
	m.products[product.ID] = &stored
	return nil
}

func (m *MemoryStore) ListCatalog(ctx context.Context, tenantID string, limit int) ([]string, error) {
	products, err := m.ListProducts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return catalog.Names(products, limit), nil
}

func (m *MemoryStore) FindProductByName(ctx context.Context, tenantID, name string) (*models.Product, error) {
	products, err := m.ListProducts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if strings.EqualFold(products[i].Name, name) {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) FindBestMatch(ctx context.Context, tenantID, normalizedMessage string) (*models.Product, error) {
	products, err := m.ListProducts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return catalog.BestMatch(products, normalizedMessage), nil
}

// Appointment operations
func (m *MemoryStore) ListAppointments(_ context.Context, tenantID string) ([]models.Appointment, error) {
	m.appointmentMu.Lock()
	defer m.appointmentMu.Unlock()

	var out []models.Appointment
	for _, a := range m.appointments {
		if a.TenantID == tenantID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.After(out[j].StartsAt) })
	return out, nil
}

func (m *MemoryStore) HasConflict(_ context.Context, tenantID string, from, to time.Time) (bool, error) {
	m.appointmentMu.Lock()
	defer m.appointmentMu.Unlock()

	return m.conflictLocked(tenantID, from, to), nil
}

func (m *MemoryStore) CreateAppointment(_ context.Context, appt *models.Appointment, from, to time.Time) error {
	m.appointmentMu.Lock()
	defer m.appointmentMu.Unlock()

	if m.conflictLocked(appt.TenantID, from, to) {
		return scheduling.ErrSlotUnavailable
	}
	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}
	appt.CreatedAt = time.Now()
	m.appointments = append(m.appointments, *appt)
	return nil
}

func (m *MemoryStore) conflictLocked(tenantID string, from, to time.Time) bool {
	for _, a := range m.appointments {
		if a.TenantID == tenantID && !a.StartsAt.Before(from) && !a.StartsAt.After(to) {
			return true
		}
	}
	return false
}

// Conversation operations
func (m *MemoryStore) LogConversation(_ context.Context, conv *models.Conversation) error {
	m.conversationMu.Lock()
	defer m.conversationMu.Unlock()

	if conv.ID == uuid.Nil {
		conv.ID = uuid.New()
	}
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = time.Now()
	}
	m.conversations = append(m.conversations, *conv)
	return nil
}

func (m *MemoryStore) PruneConversations(_ context.Context, before time.Time) (int64, error) {
	m.conversationMu.Lock()
	defer m.conversationMu.Unlock()

	kept := m.conversations[:0]
	var pruned int64
	for _, c := range m.conversations {
		if c.CreatedAt.Before(before) {
			pruned++
			continue
		}
		kept = append(kept, c)
	}
	m.conversations = kept
	return pruned, nil
}

// Conversations returns a copy of the logged turns for tenantID.
func (m *MemoryStore) Conversations(tenantID string) []models.Conversation {
	m.conversationMu.Lock()
	defer m.conversationMu.Unlock()

	var out []models.Conversation
	for _, c := range m.conversations {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out
}

var _ Store = (*MemoryStore)(nil)
