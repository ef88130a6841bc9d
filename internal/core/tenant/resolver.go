// Package tenant resolves a bot id to its configuration, creating it on first use.
package tenant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/seed"
)

// DefaultTenantID is used when a request carries no bot id.
const DefaultTenantID = "default"

type ConfigStore interface {
	GetOrCreateConfig(ctx context.Context, tenantID string) (*models.BotConfig, bool, error)
	MarkRulesSeeded(ctx context.Context, tenantID string, at time.Time) error
}

type RuleSeeder interface {
	ListRules(ctx context.Context, tenantID string, modes []string) ([]models.BusinessRule, error)
	ReplaceRules(ctx context.Context, tenantID string, rules []models.BusinessRule) error
}

type Resolver struct {
	configs ConfigStore
	rules   RuleSeeder
	now     func() time.Time
}

func NewResolver(configs ConfigStore, rules RuleSeeder) *Resolver {
	return &Resolver{configs: configs, rules: rules, now: time.Now}
}

// ID normalizes a bot id from a request.
func ID(botID string) string {
	botID = strings.TrimSpace(botID)
	if botID == "" {
		return DefaultTenantID
	}
	return botID
}

// Resolve returns the tenant's config. The store's upsert guarantees one row.
// Until the row records a successful seed, every call seeds the default rules
// when the tenant has none. Rules removed after that are left alone.
func (r *Resolver) Resolve(ctx context.Context, botID string) (*models.BotConfig, error) {
	tenantID := ID(botID)

	cfg, created, err := r.configs.GetOrCreateConfig(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("resolve tenant %s: %w", tenantID, err)
	}
	if cfg.RulesSeededAt != nil {
		return cfg, nil
	}

	existing, err := r.rules.ListRules(ctx, tenantID, nil)
	if err != nil {
		return nil, fmt.Errorf("list rules for %s: %w", tenantID, err)
	}
	if len(existing) == 0 {
		if err := r.SeedDefaults(ctx, tenantID); err != nil {
			return nil, err
		}
		zerolog.Ctx(ctx).Info().Str("tenant_id", tenantID).Bool("new_tenant", created).Msg("🌱 Default rules seeded")
	}

	at := r.now()
	if err := r.configs.MarkRulesSeeded(ctx, tenantID, at); err != nil {
		return nil, fmt.Errorf("mark rules seeded for %s: %w", tenantID, err)
	}
	cfg.RulesSeededAt = &at
	return cfg, nil
}

// SeedDefaults replaces the tenant's rules with the default set.
func (r *Resolver) SeedDefaults(ctx context.Context, tenantID string) error {
	defaults, err := seed.DefaultRules(tenantID)
	if err != nil {
		return err
	}
	if err := r.rules.ReplaceRules(ctx, tenantID, defaults); err != nil {
		return fmt.Errorf("seed default rules for %s: %w", tenantID, err)
	}
	return nil
}
