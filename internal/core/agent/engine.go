// Package agent turns an incoming chat message into a reply: a matched
// business rule when one applies, otherwise an intent-driven answer.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/catalog"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/datetime"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/nlu"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/rules"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/scheduling"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/template"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/tenant"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/textnorm"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/repositories"
)

// Store is the persistence the engine reads from and writes to.
type Store interface {
	scheduling.Store
	ListRules(ctx context.Context, tenantID string, modes []string) ([]models.BusinessRule, error)
	ListCatalog(ctx context.Context, tenantID string, limit int) ([]string, error)
	FindProductByName(ctx context.Context, tenantID, name string) (*models.Product, error)
	FindBestMatch(ctx context.Context, tenantID, normalizedMessage string) (*models.Product, error)
	LogConversation(ctx context.Context, conv *models.Conversation) error
}

// Request is one inbound chat message.
type Request struct {
	TenantID  string
	Message   string
	SessionID string
}

// Reply is the engine's answer. RuleID is set only when a rule matched.
type Reply struct {
	Text      string `json:"reply"`
	RuleID    *uint  `json:"rule_id"`
	MatchKind string `json:"match_kind"`
	Intent    string `json:"intent,omitempty"`
}

type Engine struct {
	store     Store
	tenants   *tenant.Resolver
	scheduler *scheduling.Service
	delegate  nlu.Delegate
	dates     *datetime.Resolver
	loc       *time.Location
}

func NewEngine(store Store, tenants *tenant.Resolver, delegate nlu.Delegate, loc *time.Location) *Engine {
	if delegate == nil {
		delegate = nlu.NoopDelegate{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{
		store:     store,
		tenants:   tenants,
		scheduler: scheduling.NewService(store),
		delegate:  delegate,
		dates:     datetime.NewResolver(loc, delegate),
		loc:       loc,
	}
}

// WithClock fixes "now" for relative dates, for tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.dates.WithClock(now)
	return e
}

// HandleMessage resolves one message. Only persistence failures are returned
// as errors; delegate problems degrade to deterministic replies.
func (e *Engine) HandleMessage(ctx context.Context, req Request) (*Reply, error) {
	tenantID := tenant.ID(req.TenantID)
	logger := zerolog.Ctx(ctx).With().Str("tenant_id", tenantID).Str("session_id", req.SessionID).Logger()
	ctx = logger.WithContext(ctx)

	cfg, err := e.tenants.Resolve(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	list, err := e.store.ListRules(ctx, tenantID, []string{cfg.Mode, models.ModeCommon})
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}

	names, err := e.store.ListCatalog(ctx, tenantID, catalog.DefaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	var reply *Reply
	match := rules.Select(req.Message, rules.Candidates(list, cfg.Mode))
	if match.Matched() {
		logger.Debug().Uint("rule_id", match.Rule.ID).Str("kind", string(match.Kind)).Msg("📌 Rule matched")
		reply, err = e.ruleReply(ctx, cfg, match, req.Message, names)
	} else {
		reply, err = e.intentReply(ctx, cfg, req.Message, names)
	}
	if err != nil {
		return nil, err
	}

	e.logConversation(ctx, tenantID, req, reply)
	return reply, nil
}

func (e *Engine) ruleReply(ctx context.Context, cfg *models.BotConfig, match rules.MatchResult, message string, names []string) (*Reply, error) {
	action := match.Rule.Action

	values := template.Context{}
	values.Merge(cfg.Profile())
	values.Set("product_catalog", strings.Join(names, ", "))

	if template.References(action, productPlaceholders...) {
		p, err := e.store.FindBestMatch(ctx, cfg.TenantID, textnorm.Normalize(message))
		if err != nil {
			return nil, fmt.Errorf("find product: %w", err)
		}
		if p != nil {
			values.Set("product_name", p.Name)
			values.Set("price", catalog.FormatPrice(p.Price))
			values.Set("stock", strconv.Itoa(p.Stock))
		}
	}

	if template.References(action, datePlaceholder) {
		if at, ok := e.dates.Resolve(ctx, message); ok {
			values.Set(datePlaceholder, datetime.FormatLocal(at, e.loc))
		}
	}

	text := template.Fill(action, values)
	if len(template.Unresolved(text)) > 0 {
		text = clarification(action, names, cfg.Hours)
	}

	ruleID := match.Rule.ID
	return &Reply{Text: text, RuleID: &ruleID, MatchKind: string(match.Kind)}, nil
}

func (e *Engine) intentReply(ctx context.Context, cfg *models.BotConfig, message string, names []string) (*Reply, error) {
	if !e.delegate.Available() {
		return &Reply{Text: offlineReply(cfg, names), MatchKind: string(rules.MatchNone), Intent: nlu.IntentUnknown}, nil
	}

	cls := e.delegate.Classify(ctx, message, cfg.Mode)

	text, err := e.answer(ctx, cfg, cls, message, names)
	if err != nil {
		return nil, err
	}

	facts := nlu.Facts{
		Mode:     cfg.Mode,
		Reply:    text,
		Hours:    nlu.OptionalFact(cfg.Hours),
		Address:  nlu.OptionalFact(cfg.Address),
		Payments: nlu.OptionalFact(cfg.PaymentMethods),
		Catalog:  nlu.OptionalFact(strings.Join(firstN(names, catalog.FactsListLimit), ", ")),
	}
	rendered := e.delegate.Render(ctx, facts, message, text)

	return &Reply{Text: rendered, MatchKind: string(rules.MatchNone), Intent: cls.Intent}, nil
}

func (e *Engine) answer(ctx context.Context, cfg *models.BotConfig, cls nlu.Classification, message string, names []string) (string, error) {
	switch cls.Intent {
	case nlu.IntentGreet:
		return replyGreet, nil
	case nlu.IntentBye:
		return replyBye, nil
	case nlu.IntentUnknown:
		return unknownReply(cfg, names), nil
	}

	if cfg.Mode == models.ModeReservations {
		return e.answerReservations(ctx, cfg, cls, message)
	}
	return e.answerSales(ctx, cfg, cls, message, names)
}

func (e *Engine) answerSales(ctx context.Context, cfg *models.BotConfig, cls nlu.Classification, message string, names []string) (string, error) {
	switch cls.Intent {
	case nlu.IntentAskCatalog:
		return catalogReply(names), nil
	case nlu.IntentAskPrice, nlu.IntentAskStock:
		p, err := e.lookupProduct(ctx, cfg.TenantID, cls.Slot(nlu.SlotProductName), message)
		if err != nil {
			return "", err
		}
		return productReply(p, names), nil
	case nlu.IntentAskHours:
		return profileReply(cfg.Hours, "Nuestro horario es: %s.", "No tengo horario configurado."), nil
	case nlu.IntentAskAddress:
		return profileReply(cfg.Address, "Estamos en %s.", "No tengo dirección configurada."), nil
	case nlu.IntentAskPayments:
		return profileReply(cfg.PaymentMethods, "Medios de pago: %s.", "No tengo medios de pago configurados."), nil
	}
	return replyRephrase, nil
}

func (e *Engine) answerReservations(ctx context.Context, cfg *models.BotConfig, cls nlu.Classification, message string) (string, error) {
	switch cls.Intent {
	case nlu.IntentAskServices:
		return profileReply(cfg.ServiceList, "Servicios: %s.", "No tengo servicios configurados."), nil
	case nlu.IntentCheckAvailability, nlu.IntentCreateBooking:
		return e.answerBooking(ctx, cfg, cls, message)
	case nlu.IntentCancelBooking:
		return cancelReply(cfg), nil
	case nlu.IntentAskHours:
		return profileReply(cfg.Hours, "Atendemos: %s.", "No tengo horario configurado."), nil
	case nlu.IntentAskAddress:
		return profileReply(cfg.Address, "Estamos en %s.", "No tengo dirección configurada."), nil
	}
	return replyRephrase, nil
}

func (e *Engine) answerBooking(ctx context.Context, cfg *models.BotConfig, cls nlu.Classification, message string) (string, error) {
	at, ok := e.resolveBookingDate(ctx, cls.Slot(nlu.SlotDateTime), message)
	if !ok {
		return askDateReply(cfg.Hours), nil
	}
	slot := cfg.EffectiveSlotMinutes()

	if cls.Intent == nlu.IntentCheckAvailability {
		avail, err := e.scheduler.Check(ctx, cfg.TenantID, at, slot)
		if err != nil {
			return "", err
		}
		if !avail.Available {
			return replySlotTaken, nil
		}
		return fmt.Sprintf("Hay disponibilidad el %s. ¿Querés confirmar el turno?", datetime.FormatLocal(at, e.loc)), nil
	}

	appt := &models.Appointment{
		TenantID: cfg.TenantID,
		Customer: cls.Slot(nlu.SlotCustomer),
		StartsAt: at,
		Notes:    cls.Slot(nlu.SlotService),
	}
	if err := e.scheduler.Book(ctx, appt, slot); err != nil {
		if errors.Is(err, scheduling.ErrSlotUnavailable) {
			return replySlotTaken, nil
		}
		return "", err
	}

	zerolog.Ctx(ctx).Info().Str("appointment_id", appt.ID.String()).Time("starts_at", at).Msg("📅 Appointment booked")
	return fmt.Sprintf("Listo. Turno para %s el %s.", appt.Customer, datetime.FormatLocal(at, e.loc)), nil
}

// resolveBookingDate tries the classifier's date slot first, then the raw message.
func (e *Engine) resolveBookingDate(ctx context.Context, slot, message string) (time.Time, bool) {
	if slot != "" {
		if at, ok := e.dates.Resolve(ctx, slot); ok {
			return at, true
		}
	}
	return e.dates.Resolve(ctx, message)
}

// lookupProduct prefers an exact name from the classifier over fuzzy matching.
func (e *Engine) lookupProduct(ctx context.Context, tenantID, explicit, message string) (*models.Product, error) {
	if explicit != "" {
		p, err := e.store.FindProductByName(ctx, tenantID, explicit)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("find product by name: %w", err)
		}
	}

	p, err := e.store.FindBestMatch(ctx, tenantID, textnorm.Normalize(message))
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return p, nil
}

func (e *Engine) logConversation(ctx context.Context, tenantID string, req Request, reply *Reply) {
	conv := &models.Conversation{
		TenantID:  tenantID,
		SessionID: req.SessionID,
		Message:   req.Message,
		Reply:     reply.Text,
		RuleID:    reply.RuleID,
		MatchKind: reply.MatchKind,
		Intent:    reply.Intent,
	}
	if err := e.store.LogConversation(ctx, conv); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("❌ Failed to log conversation")
	}
}
