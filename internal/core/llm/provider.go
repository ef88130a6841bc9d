package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// LLMProvider is a chat-completion backend.
type LLMProvider interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string, opts ...Option) (string, error)
	GetProviderName() string
}

// JSONProvider is implemented by providers with a native JSON-object response mode.
type JSONProvider interface {
	GenerateJSONResponse(ctx context.Context, systemPrompt, userMessage string, opts ...Option) (string, error)
}

// Option overrides a provider default for a single call.
type Option func(*CallOptions)

// CallOptions is the per-call configuration built from Options. Custom
// providers read it with ApplyOptions.
type CallOptions struct {
	// Temperature is nil when the provider default applies.
	Temperature *float32
}

// WithTemperature sets the sampling temperature for one call. Zero is a valid value.
func WithTemperature(t float32) Option {
	return func(o *CallOptions) {
		o.Temperature = &t
	}
}

func ApplyOptions(opts []Option) CallOptions {
	var o CallOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// temperatureFor returns the temperature opts select, or fallback.
func temperatureFor(fallback float32, opts []Option) float32 {
	if t := ApplyOptions(opts).Temperature; t != nil {
		return *t
	}
	return fallback
}

// ErrNotConfigured means the selected provider has no API key. Callers run
// without a language model instead of failing.
var ErrNotConfigured = errors.New("llm provider not configured")

type ProviderType string

const (
	ProviderOpenAI   ProviderType = "openai"
	ProviderGroq     ProviderType = "groq"
	ProviderDeepSeek ProviderType = "deepseek"
	ProviderClaude   ProviderType = "claude"
)

// DefaultTemperature keeps rendered replies close to the supplied facts. It
// applies when a call does not pass WithTemperature.
const DefaultTemperature float32 = 0.2

type ProviderConfig struct {
	Type ProviderType

	OpenAIKey   string
	GroqKey     string
	DeepSeekKey string
	ClaudeKey   string

	// BaseURL overrides the provider endpoint (proxies, tests).
	BaseURL     string
	Model string
	// Temperature is the default for calls without WithTemperature; 0 is sent as 0.
	Temperature float32
	MaxTokens   int
}

// NewProvider builds the provider selected by cfg.Type.
func NewProvider(cfg *ProviderConfig) (LLMProvider, error) {
	switch cfg.Type {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is empty: %w", ErrNotConfigured)
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderGroq:
		if cfg.GroqKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is empty: %w", ErrNotConfigured)
		}
		return NewGroqProvider(cfg.GroqKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderDeepSeek:
		if cfg.DeepSeekKey == "" {
			return nil, fmt.Errorf("DEEPSEEK_API_KEY is empty: %w", ErrNotConfigured)
		}
		return NewDeepSeekProvider(cfg.DeepSeekKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderClaude:
		if cfg.ClaudeKey == "" {
			return nil, fmt.Errorf("CLAUDE_API_KEY is empty: %w", ErrNotConfigured)
		}
		return NewClaudeProvider(cfg.ClaudeKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}

// LoadProviderFromEnv reads LLM_PROVIDER, LLM_MODEL, LLM_BASE_URL and the per-provider keys.
func LoadProviderFromEnv() *ProviderConfig {
	providerType := os.Getenv("LLM_PROVIDER")
	if providerType == "" {
		providerType = string(ProviderOpenAI)
	}

	cfg := &ProviderConfig{
		Type:        ProviderType(providerType),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		GroqKey:     os.Getenv("GROQ_API_KEY"),
		DeepSeekKey: os.Getenv("DEEPSEEK_API_KEY"),
		ClaudeKey:   os.Getenv("CLAUDE_API_KEY"),
		BaseURL:     os.Getenv("LLM_BASE_URL"),
		Model:       os.Getenv("LLM_MODEL"),
		Temperature: DefaultTemperature,
		MaxTokens:   400,
	}

	if cfg.Model == "" {
		switch cfg.Type {
		case ProviderOpenAI:
			cfg.Model = "gpt-4o-mini"
		case ProviderGroq:
			cfg.Model = "llama-3.1-8b-instant"
		case ProviderDeepSeek:
			cfg.Model = "deepseek-chat"
		case ProviderClaude:
			cfg.Model = "claude-3-5-haiku-20241022"
		}
	}

	return cfg
}
