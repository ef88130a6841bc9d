package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/tenant"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/repositories"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/seed"
)

var ruleModes = map[string]bool{
	models.ModeSales:        true,
	models.ModeReservations: true,
	models.ModeCommon:       true,
}

type RuleService struct {
	ruleRepo repositories.RuleRepo
	tenants  *tenant.Resolver
}

func NewRuleService(ruleRepo repositories.RuleRepo, tenants *tenant.Resolver) *RuleService {
	return &RuleService{ruleRepo: ruleRepo, tenants: tenants}
}

// ListRules lists the bot's rules, optionally only those of one mode.
func (s *RuleService) ListRules(ctx context.Context, botID, mode string) ([]models.BusinessRule, error) {
	cfg, err := s.tenants.Resolve(ctx, botID)
	if err != nil {
		return nil, err
	}
	var modes []string
	if mode != "" {
		modes = []string{mode}
	}
	rules, err := s.ruleRepo.ListRules(ctx, cfg.TenantID, modes)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return rules, nil
}

func (s *RuleService) CreateRule(ctx context.Context, req *models.RuleRequest) (*models.BusinessRule, error) {
	rule, err := s.buildRule(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.ruleRepo.CreateRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}
	return rule, nil
}

// UpdateRule replaces every field of rule id. Missing ids yield repositories.ErrNotFound.
func (s *RuleService) UpdateRule(ctx context.Context, id uint, req *models.RuleRequest) (*models.BusinessRule, error) {
	rule, err := s.buildRule(ctx, req)
	if err != nil {
		return nil, err
	}
	rule.ID = id
	if err := s.ruleRepo.UpdateRule(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *RuleService) DeleteRule(ctx context.Context, botID string, id uint) error {
	return s.ruleRepo.DeleteRule(ctx, tenant.ID(botID), id)
}

// RestoreDefaults replaces the bot's rules with the default set.
func (s *RuleService) RestoreDefaults(ctx context.Context, botID string) error {
	cfg, err := s.tenants.Resolve(ctx, botID)
	if err != nil {
		return err
	}
	return s.tenants.SeedDefaults(ctx, cfg.TenantID)
}

func (s *RuleService) buildRule(ctx context.Context, req *models.RuleRequest) (*models.BusinessRule, error) {
	if !ruleModes[req.Mode] {
		return nil, invalidf("mode must be one of sales, reservations, common")
	}
	if strings.TrimSpace(req.Action) == "" {
		return nil, invalidf("action is required")
	}

	cfg, err := s.tenants.Resolve(ctx, req.BotID)
	if err != nil {
		return nil, err
	}

	triggers := make([]string, 0, len(req.Triggers))
	for _, t := range req.Triggers {
		if t = strings.TrimSpace(t); t != "" {
			triggers = append(triggers, t)
		}
	}
	priority := models.DefaultRulePriority
	if req.Priority != nil {
		priority = *req.Priority
	}
	return seed.NewRule(cfg.TenantID, req.Mode, req.Condition, triggers, req.Action, priority)
}
