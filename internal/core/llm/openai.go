package llm

import (
	"context"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"
)

// ChatCompletionProvider talks to any OpenAI-compatible chat completions API.
// OpenAI, Groq and DeepSeek differ only in endpoint and default model.
type ChatCompletionProvider struct {
	name        string
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func newChatCompletionProvider(name, apiKey, baseURL, model string, temperature float32, maxTokens int) *ChatCompletionProvider {
	if maxTokens == 0 {
		maxTokens = 400
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &ChatCompletionProvider{
		name:        name,
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func NewOpenAIProvider(apiKey, baseURL, model string, temperature float32, maxTokens int) *ChatCompletionProvider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return newChatCompletionProvider("OpenAI", apiKey, baseURL, model, temperature, maxTokens)
}

func (p *ChatCompletionProvider) GetProviderName() string {
	return p.name
}

func (p *ChatCompletionProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string, opts ...Option) (string, error) {
	return p.complete(ctx, p.request(systemPrompt, userMessage, opts))
}

// GenerateJSONResponse asks for a single JSON object.
func (p *ChatCompletionProvider) GenerateJSONResponse(ctx context.Context, systemPrompt, userMessage string, opts ...Option) (string, error) {
	req := p.request(systemPrompt, userMessage, opts)
	req.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	return p.complete(ctx, req)
}

func (p *ChatCompletionProvider) request(systemPrompt, userMessage string, opts []Option) openai.ChatCompletionRequest {
	temperature := temperatureFor(p.temperature, opts)
	if temperature == 0 {
		// the field is omitempty; an absent temperature means the API default of 1
		temperature = math.SmallestNonzeroFloat32
	}

	return openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: temperature,
		MaxTokens:   p.maxTokens,
	}
}

func (p *ChatCompletionProvider) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s error: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", p.name)
	}

	return resp.Choices[0].Message.Content, nil
}
