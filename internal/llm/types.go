// Package llm provides the client for the external generative-text
// collaborator. The assessment core never depends on it directly; the
// narrative enricher does, behind a capability interface with a
// deterministic fallback.
package llm

import "context"

// Message is one turn of a chat completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest describes one completion call.
type CompletionRequest struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// TokenUsage reports token accounting from the provider.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionResponse is the provider's answer.
type CompletionResponse struct {
	Content      string
	FinishReason string
	Usage        TokenUsage
}

// Client is the minimal completion contract. Callers own timeout and
// cancellation policy through ctx.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	Model() string
}

// Config configures a provider client.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    int // seconds
	MaxRetries int
	Headers    map[string]string
}
