package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	claudeBaseURL    = "https://api.anthropic.com"
	anthropicVersion = "2023-06-01"
)

type ClaudeProvider struct {
	client      *resty.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewClaudeProvider(apiKey, baseURL, model string, temperature float32, maxTokens int) *ClaudeProvider {
	if model == "" {
		model = "claude-3-5-haiku-20241022"
	}
	if maxTokens == 0 {
		maxTokens = 400
	}
	if baseURL == "" {
		baseURL = claudeBaseURL
	}

	// the caller's context carries the real deadline
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", anthropicVersion)

	return &ClaudeProvider{
		client:      client,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (p *ClaudeProvider) GetProviderName() string {
	return "Anthropic Claude"
}

type claudeRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float32         `json:"temperature"`
	Messages    []claudeMessage `json:"messages"`
	System      string          `json:"system,omitempty"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (p *ClaudeProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string, opts ...Option) (string, error) {
	var out claudeResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(claudeRequest{
			Model:       p.model,
			MaxTokens:   p.maxTokens,
			Temperature: temperatureFor(p.temperature, opts),
			System:      systemPrompt,
			Messages:    []claudeMessage{{Role: "user", Content: userMessage}},
		}).
		SetResult(&out).
		Post("/v1/messages")
	if err != nil {
		return "", fmt.Errorf("claude request failed: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("claude error (model: %s, status: %d): %s", p.model, resp.StatusCode(), resp.String())
	}

	for _, block := range out.Content {
		if block.Text != "" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no response from Claude")
}
