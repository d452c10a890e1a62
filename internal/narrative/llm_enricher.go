package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"mosaic/internal/llm"
	"mosaic/internal/logging"
)

const enricherSystemPrompt = `You are a senior leadership coach writing the personalized section of a professional assessment report. You receive the candidate's profile, per-dimension scores with qualitative bands, their resolved archetype, and notable extreme answers. Respond with a single JSON object and nothing else, using exactly these keys: "executive_summary" (string, 2-4 sentences addressed to the candidate), "superpower_analysis" (string), "blindspot_warning" (string), "immediate_actions" (array of 2-4 short imperative strings). Ground every claim in the supplied scores; do not invent facts about the candidate.`

// LLMEnricher produces the prose through the generative-text collaborator
// and degrades transparently to the canned enricher on any failure. Its
// Enrich never returns an error: the report must always render, possibly
// with less personalized prose.
type LLMEnricher struct {
	client   llm.Client
	fallback *CannedEnricher
	logger   logging.Logger
}

// NewLLMEnricher wraps an LLM client with the canned fallback.
func NewLLMEnricher(client llm.Client, fallback *CannedEnricher) *LLMEnricher {
	return &LLMEnricher{
		client:   client,
		fallback: fallback,
		logger:   logging.NewComponentLogger("enricher"),
	}
}

// Enrich calls the remote collaborator, falling back to canned content on
// transport or parse failure.
func (e *LLMEnricher) Enrich(ctx context.Context, req Request) (*Enrichment, error) {
	enrichment, err := e.enrichRemote(ctx, req)
	if err != nil {
		e.logger.Warn("remote enrichment failed, using canned content: %v", err)
		return e.fallback.Enrich(ctx, req)
	}
	return enrichment, nil
}

func (e *LLMEnricher) enrichRemote(ctx context.Context, req Request) (*Enrichment, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal enrichment payload: %w", err)
	}

	resp, err := e.client.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: "system", Content: enricherSystemPrompt},
			{Role: "user", Content: string(payload)},
		},
		Temperature: 0.4,
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, err
	}

	enrichment, err := parseEnrichment(resp.Content)
	if err != nil {
		return nil, err
	}
	enrichment.Source = "remote"
	return enrichment, nil
}

// parseEnrichment decodes the model's JSON, repairing common formatting
// damage (markdown fences, trailing commas, single quotes) first.
func parseEnrichment(content string) (*Enrichment, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, fmt.Errorf("empty enrichment response")
	}

	repaired, err := jsonrepair.JSONRepair(trimmed)
	if err != nil {
		return nil, fmt.Errorf("repair enrichment JSON: %w", err)
	}

	var enrichment Enrichment
	if err := json.Unmarshal([]byte(repaired), &enrichment); err != nil {
		return nil, fmt.Errorf("decode enrichment JSON: %w", err)
	}

	if enrichment.ExecutiveSummary == "" || enrichment.SuperpowerAnalysis == "" ||
		enrichment.BlindspotWarning == "" || len(enrichment.ImmediateActions) == 0 {
		return nil, fmt.Errorf("enrichment response missing required fields")
	}
	return &enrichment, nil
}
