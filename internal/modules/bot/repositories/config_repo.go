package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

type configRepo struct {
	db *gorm.DB
}

func NewConfigRepo(db *gorm.DB) ConfigRepo {
	return &configRepo{db: db}
}

func (r *configRepo) GetOrCreateConfig(ctx context.Context, tenantID string) (*models.BotConfig, bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(models.NewDefaultConfig(tenantID))
	if res.Error != nil {
		return nil, false, fmt.Errorf("ensure bot config: %w", res.Error)
	}

	var cfg models.BotConfig
	if err := r.db.WithContext(ctx).First(&cfg, "tenant_id = ?", tenantID).Error; err != nil {
		return nil, false, fmt.Errorf("load bot config: %w", err)
	}
	return &cfg, res.RowsAffected == 1, nil
}

func (r *configRepo) MarkRulesSeeded(ctx context.Context, tenantID string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&models.BotConfig{}).
		Where("tenant_id = ?", tenantID).
		Update("rules_seeded_at", at)
	if res.Error != nil {
		return fmt.Errorf("mark rules seeded: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *configRepo) UpdateConfig(ctx context.Context, tenantID string, updates map[string]interface{}) (*models.BotConfig, error) {
	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.BotConfig{}).
			Where("tenant_id = ?", tenantID).
			Updates(updates).Error
		if err != nil {
			return nil, fmt.Errorf("update bot config: %w", err)
		}
	}

	var cfg models.BotConfig
	if err := r.db.WithContext(ctx).First(&cfg, "tenant_id = ?", tenantID).Error; err != nil {
		return nil, notFound(err)
	}
	return &cfg, nil
}
