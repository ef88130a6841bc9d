package repositories

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

type ruleRepo struct {
	db *gorm.DB
}

func NewRuleRepo(db *gorm.DB) RuleRepo {
	return &ruleRepo{db: db}
}

func (r *ruleRepo) ListRules(ctx context.Context, tenantID string, modes []string) ([]models.BusinessRule, error) {
	query := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if len(modes) > 0 {
		query = query.Where("mode = ANY(?)", pq.Array(modes))
	}

	var rules []models.BusinessRule
	if err := query.Order("priority DESC, id ASC").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *ruleRepo) CreateRule(ctx context.Context, rule *models.BusinessRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *ruleRepo) UpdateRule(ctx context.Context, rule *models.BusinessRule) error {
	res := r.db.WithContext(ctx).
		Model(&models.BusinessRule{}).
		Where("id = ? AND tenant_id = ?", rule.ID, rule.TenantID).
		Updates(map[string]interface{}{
			"mode":      rule.Mode,
			"condition": rule.Condition,
			"triggers":  rule.Triggers,
			"action":    rule.Action,
			"priority":  rule.Priority,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return notFound(r.db.WithContext(ctx).First(rule, "id = ?", rule.ID).Error)
}

func (r *ruleRepo) DeleteRule(ctx context.Context, tenantID string, id uint) error {
	res := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&models.BusinessRule{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ruleRepo) ReplaceRules(ctx context.Context, tenantID string, rules []models.BusinessRule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", tenantID).Delete(&models.BusinessRule{}).Error; err != nil {
			return err
		}
		if len(rules) == 0 {
			return nil
		}
		for i := range rules {
			rules[i].ID = 0
			rules[i].TenantID = tenantID
		}
		return tx.CreateInBatches(rules, 100).Error
	})
}
