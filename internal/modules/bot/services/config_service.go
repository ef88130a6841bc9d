package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/tenant"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/repositories"
)

const (
	DefaultQRSize = 256
	MaxQRSize     = 1024
)

type ConfigService struct {
	configRepo    repositories.ConfigRepo
	tenants       *tenant.Resolver
	publicBaseURL string
}

func NewConfigService(configRepo repositories.ConfigRepo, tenants *tenant.Resolver, publicBaseURL string) *ConfigService {
	return &ConfigService{
		configRepo:    configRepo,
		tenants:       tenants,
		publicBaseURL: publicBaseURL,
	}
}

// GetConfig returns the bot's config, creating it on first access.
func (s *ConfigService) GetConfig(ctx context.Context, botID string) (*models.BotConfig, error) {
	return s.tenants.Resolve(ctx, botID)
}

// UpdateConfig applies a partial update after validating mode and slot size.
func (s *ConfigService) UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.BotConfig, error) {
	if req.Mode != nil && *req.Mode != models.ModeSales && *req.Mode != models.ModeReservations {
		return nil, invalidf("mode must be %q or %q", models.ModeSales, models.ModeReservations)
	}
	if req.SlotMinutes != nil && (*req.SlotMinutes < models.MinSlotMinutes || *req.SlotMinutes > models.MaxSlotMinutes) {
		return nil, invalidf("slot_minutes must be between %d and %d", models.MinSlotMinutes, models.MaxSlotMinutes)
	}

	cfg, err := s.tenants.Resolve(ctx, req.BotID)
	if err != nil {
		return nil, err
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return cfg, nil
	}
	updated, err := s.configRepo.UpdateConfig(ctx, cfg.TenantID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update config: %w", err)
	}
	return updated, nil
}

// ChatURL is the public chat page for botID.
func (s *ConfigService) ChatURL(botID string) string {
	return s.publicBaseURL + "/?bot_id=" + url.QueryEscape(tenant.ID(botID))
}

// ShareQR encodes ChatURL as a PNG QR code.
func (s *ConfigService) ShareQR(botID string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	if size > MaxQRSize {
		size = MaxQRSize
	}
	png, err := qrcode.Encode(s.ChatURL(botID), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR: %w", err)
	}
	return png, nil
}
