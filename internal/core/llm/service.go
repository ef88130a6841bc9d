package llm

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// Service wraps an LLM provider for dependency injection.
type Service struct {
	provider LLMProvider
}

// NewService builds the provider described by cfg. It returns ErrNotConfigured
// (wrapped) when the selected provider has no key.
func NewService(cfg *ProviderConfig) (*Service, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	log.Info().Str("provider", provider.GetProviderName()).Str("model", cfg.Model).Msg("🤖 LLM provider ready")
	return &Service{provider: provider}, nil
}

// NewServiceWithProvider creates a Service around an existing provider (tests, custom backends).
func NewServiceWithProvider(provider LLMProvider) *Service {
	return &Service{provider: provider}
}

// IsNotConfigured reports whether err only means no key was supplied.
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}

func (s *Service) Generate(ctx context.Context, systemPrompt, userMessage string, opts ...Option) (string, error) {
	return s.provider.GenerateResponse(ctx, systemPrompt, userMessage, opts...)
}

// GenerateJSON uses the provider's JSON mode when it has one.
func (s *Service) GenerateJSON(ctx context.Context, systemPrompt, userMessage string, opts ...Option) (string, error) {
	if jp, ok := s.provider.(JSONProvider); ok {
		return jp.GenerateJSONResponse(ctx, systemPrompt, userMessage, opts...)
	}
	return s.provider.GenerateResponse(ctx, systemPrompt, userMessage, opts...)
}

func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}
