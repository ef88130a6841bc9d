package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/llm"
)

// Completer is the slice of llm.Service the delegate uses.
type Completer interface {
	Generate(ctx context.Context, systemPrompt, userMessage string, opts ...llm.Option) (string, error)
	GenerateJSON(ctx context.Context, systemPrompt, userMessage string, opts ...llm.Option) (string, error)
	GetProviderName() string
}

// Classification and date extraction must be repeatable; only rendering uses
// the provider's default temperature.
var deterministic = llm.WithTemperature(0)

// LLMDelegate implements Delegate on top of a chat-completion model.
type LLMDelegate struct {
	llm     Completer
	timeout time.Duration
}

func NewLLMDelegate(llm Completer, timeout time.Duration) *LLMDelegate {
	return &LLMDelegate{llm: llm, timeout: timeout}
}

func (d *LLMDelegate) Available() bool {
	return d.llm != nil
}

func (d *LLMDelegate) Classify(ctx context.Context, message, mode string) Classification {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	out, err := d.llm.GenerateJSON(ctx, classifySystemPrompt(mode), classifyUserPrompt(message, mode), deterministic)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("provider", d.llm.GetProviderName()).Msg("⚠️ Intent classification failed, using unknown")
		return Unknown()
	}

	c, err := parseClassification(out, mode)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("output", out).Msg("⚠️ Malformed classification payload")
		return Unknown()
	}
	return c
}

func (d *LLMDelegate) Render(ctx context.Context, facts Facts, message, fallback string) string {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	out, err := d.llm.Generate(ctx, renderSystemPrompt(facts), renderUserPrompt(message))
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("provider", d.llm.GetProviderName()).Msg("⚠️ Reply rendering failed, using fallback")
		return fallback
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return fallback
	}
	return out
}

func (d *LLMDelegate) ResolveDateTime(ctx context.Context, phrase string, loc *time.Location) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	out, err := d.llm.Generate(ctx, dateSystemPrompt(loc), dateUserPrompt(phrase), deterministic)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("phrase", phrase).Msg("⚠️ Date resolution failed")
		return "", false
	}

	out = strings.Trim(strings.TrimSpace(out), "`\"' ")
	if out == "" || strings.EqualFold(out, "null") {
		return "", false
	}
	return out, true
}

type rawClassification struct {
	Intent string                 `json:"intent"`
	Slots  map[string]interface{} `json:"slots"`
}

// parseClassification keeps only the intents allowed for mode and the known slots.
func parseClassification(out, mode string) (Classification, error) {
	payload := extractJSONObject(out)
	if payload == "" {
		return Classification{}, fmt.Errorf("no JSON object in output")
	}

	var raw rawClassification
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return Classification{}, fmt.Errorf("decode classification: %w", err)
	}

	c := Unknown()
	intent := strings.ToLower(strings.TrimSpace(raw.Intent))
	for _, allowed := range Intents(mode) {
		if intent == allowed {
			c.Intent = intent
			break
		}
	}

	for name, v := range raw.Slots {
		if !allowedSlots[name] || v == nil {
			continue
		}
		var s string
		switch val := v.(type) {
		case string:
			s = strings.TrimSpace(val)
		case map[string]interface{}, []interface{}:
			continue
		default:
			s = fmt.Sprint(val)
		}
		if s != "" {
			c.Slots[name] = s
		}
	}
	return c, nil
}

// extractJSONObject strips prose or code fences around the first JSON object.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
