package llm

import (
	"context"
	"time"

	mosaicerrors "mosaic/internal/errors"
	"mosaic/internal/logging"
)

// retryClient wraps an LLM client with retry logic
type retryClient struct {
	underlying  Client
	retryConfig mosaicerrors.RetryConfig
	logger      logging.Logger
}

// NewRetryClient wraps an LLM client with exponential-backoff retries for
// transient failures. Permanent errors pass through immediately.
func NewRetryClient(client Client, retryConfig mosaicerrors.RetryConfig) Client {
	return &retryClient{
		underlying:  client,
		retryConfig: retryConfig,
		logger:      logging.NewComponentLogger("llm-retry"),
	}
}

// Complete executes LLM completion with retry logic
func (c *retryClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	startTime := time.Now()

	resp, err := mosaicerrors.RetryWithResult(ctx, c.retryConfig, func(ctx context.Context) (*CompletionResponse, error) {
		return c.underlying.Complete(ctx, req)
	}, c.logger)

	duration := time.Since(startTime)
	if err != nil {
		c.logger.Warn("LLM request failed after retries (took %v): %v", duration, err)
		return nil, err
	}

	if duration > 5*time.Second {
		c.logger.Debug("LLM request succeeded after %v", duration)
	}
	return resp, nil
}

// Model returns the underlying model name
func (c *retryClient) Model() string {
	return c.underlying.Model()
}
