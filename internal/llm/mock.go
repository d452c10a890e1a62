package llm

import (
	"context"
	"fmt"
)

// MockClient implements Client for tests. Responses are served in order;
// when the list is exhausted the last entry repeats.
type MockClient struct {
	ModelName string
	Responses []string
	Err       error

	Calls    int
	Requests []CompletionRequest
}

// Complete returns the next scripted response, or the configured error.
func (m *MockClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	m.Calls++
	m.Requests = append(m.Requests, req)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Responses) == 0 {
		return nil, fmt.Errorf("mock client has no responses configured")
	}

	idx := m.Calls - 1
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	return &CompletionResponse{
		Content:      m.Responses[idx],
		FinishReason: "stop",
	}, nil
}

// Model returns the configured model name.
func (m *MockClient) Model() string {
	if m.ModelName == "" {
		return "mock"
	}
	return m.ModelName
}
