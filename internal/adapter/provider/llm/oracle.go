// Package llm adapts the Anthropic Messages API into the etymology,
// relationship, and usage-example oracles consumed by the enrichment
// pipeline. Every call asks for a strict JSON-only answer and rejects
// responses that do not contain a valid JSON object.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/vocabguru/vocabguru-backend/internal/config"
	"github.com/vocabguru/vocabguru-backend/internal/domain"
	"github.com/vocabguru/vocabguru-backend/internal/provider"
)

// Oracle answers etymology, relationship and usage-example queries via
// the Anthropic Messages API.
type Oracle struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewOracle creates an Oracle from the LLM oracle configuration.
func NewOracle(cfg config.OracleConfig, logger *slog.Logger) *Oracle {
	return &Oracle{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.LLMAPIKey)),
		model:     cfg.LLMModel,
		maxTokens: cfg.LLMMaxTokens,
		log:       logger.With("adapter", "llm"),
	}
}

// TraceEtymology asks the model for the word's origin chain.
func (o *Oracle) TraceEtymology(ctx context.Context, word string) (*provider.EtymologyResult, error) {
	raw, err := o.complete(ctx, buildEtymologyPrompt(word))
	if err != nil {
		return nil, fmt.Errorf("llm: etymology for %q: %w", word, err)
	}

	var resp etymologyResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("llm: decode etymology for %q: %w", word, err)
	}

	res := &provider.EtymologyResult{
		LanguageOfOrigin:   strings.TrimSpace(resp.LanguageOfOrigin),
		LanguageFamily:     strings.TrimSpace(resp.LanguageFamily),
		WordEvolution:      strings.TrimSpace(resp.WordEvolution),
		CulturalVariations: strings.TrimSpace(resp.CulturalVariations),
	}
	for _, f := range resp.HistoricalForms {
		if strings.TrimSpace(f.Form) == "" {
			continue
		}
		res.HistoricalForms = append(res.HistoricalForms, provider.HistoricalFormResult{
			Period:  strings.TrimSpace(f.Period),
			Form:    strings.TrimSpace(f.Form),
			Meaning: strings.TrimSpace(f.Meaning),
		})
	}
	if res.LanguageOfOrigin == "" && len(res.HistoricalForms) == 0 {
		return nil, fmt.Errorf("llm: empty etymology for %q", word)
	}
	return res, nil
}

// SuggestRelationships asks the model for semantic edges from the word.
// Edges with an unknown relation type or an empty target are dropped;
// strength and confidence are clamped to [0,1].
func (o *Oracle) SuggestRelationships(ctx context.Context, word string) ([]provider.RelationshipResult, error) {
	raw, err := o.complete(ctx, buildRelationshipPrompt(word))
	if err != nil {
		return nil, fmt.Errorf("llm: relationships for %q: %w", word, err)
	}

	var resp relationshipResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("llm: decode relationships for %q: %w", word, err)
	}

	out := make([]provider.RelationshipResult, 0, len(resp.Relationships))
	for _, r := range resp.Relationships {
		target := domain.NormalizeWord(r.TargetWord)
		relType := domain.RelationType(strings.ToUpper(strings.TrimSpace(r.Type)))
		if target == "" || target == domain.NormalizeWord(word) || !relType.IsValid() {
			continue
		}
		out = append(out, provider.RelationshipResult{
			TargetWord: target,
			Type:       relType.String(),
			Strength:   clamp01(r.Strength),
			Confidence: clamp01(r.Confidence),
		})
	}
	return out, nil
}

// GenerateExamples asks the model for natural usage sentences for the
// word in the given part of speech.
func (o *Oracle) GenerateExamples(ctx context.Context, word string, pos domain.PartOfSpeech) ([]provider.ExampleResult, error) {
	raw, err := o.complete(ctx, buildExamplePrompt(word, pos))
	if err != nil {
		return nil, fmt.Errorf("llm: examples for %q: %w", word, err)
	}

	var resp exampleResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("llm: decode examples for %q: %w", word, err)
	}

	out := make([]provider.ExampleResult, 0, len(resp.Examples))
	for _, e := range resp.Examples {
		sentence := strings.TrimSpace(e.Sentence)
		if sentence == "" {
			continue
		}
		out = append(out, provider.ExampleResult{
			Sentence: sentence,
			Context:  strings.TrimSpace(e.Context),
		})
	}
	return out, nil
}

// complete sends one prompt and returns the JSON object extracted from
// the model's reply.
func (o *Oracle) complete(ctx context.Context, prompt string) (string, error) {
	msg, err := o.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(o.model),
		MaxTokens: o.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("api call: %w", err)
	}
	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty response")
	}

	jsonStr, err := extractJSON(msg.Content[0].Text)
	if err != nil {
		return "", err
	}
	if !json.Valid([]byte(jsonStr)) {
		return "", fmt.Errorf("response does not contain valid JSON")
	}
	return jsonStr, nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
