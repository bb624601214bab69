// Package llm provides the HTTP client used to reach completion providers.
package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/rsrini3/prompt-optimizer/config"
	"github.com/rsrini3/prompt-optimizer/internal/logging"
	"github.com/rsrini3/prompt-optimizer/providers"
)

// LLM is the interface the evaluator depends on for completion calls.
type LLM interface {
	Generate(ctx context.Context, prompt string) (*providers.Response, error)
	SetOption(key string, value any)
	GetLogger() logging.Logger
}

// LLMImpl is the provider-backed implementation of the LLM interface.
type LLMImpl struct {
	Provider   providers.Provider
	Options    map[string]any
	MaxRetries int
	RetryDelay time.Duration
	client     *http.Client
	limiter    *rate.Limiter
	tokens     *TokenCounter
	logger     logging.Logger
}

// NewLLM builds a client for the configured provider. Requests are bounded
// by the config timeout and throttled to RequestsPerMinute.
func NewLLM(cfg *config.Config, logger logging.Logger, registry *providers.ProviderRegistry) (LLM, error) {
	provider, err := registry.Get(cfg.Provider, cfg.APIKeys[cfg.Provider], cfg.Model, cfg.ExtraHeaders)
	if err != nil {
		return nil, err
	}

	provider.SetDefaultOptions(cfg)
	provider.SetLogger(logger)

	tokens, err := NewTokenCounter(cfg.Model, logger)
	if err != nil {
		return nil, err
	}

	llmClient := &LLMImpl{
		Provider:   provider,
		Options:    make(map[string]any),
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		client:     &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1),
		tokens:     tokens,
		logger:     logger,
	}

	return llmClient, nil
}

func (l *LLMImpl) SetOption(key string, value any) {
	l.Options[key] = value
	l.logger.Debug("Option set", "key", key, "value", value)
}

func (l *LLMImpl) GetLogger() logging.Logger {
	return l.logger
}

// Generate sends the prompt to the provider as a single-turn request,
// retrying transient failures up to MaxRetries times.
func (l *LLMImpl) Generate(ctx context.Context, prompt string) (*providers.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= l.MaxRetries; attempt++ {
		l.logger.Debug("Generating text", "provider", l.Provider.Name(), "attempt", attempt+1)

		result, err := l.attemptGenerate(ctx, prompt)
		if err == nil {
			return result, nil
		}
		lastErr = err

		l.logger.Warn("Generation attempt failed", "error", err, "attempt", attempt+1)

		if attempt < l.MaxRetries {
			l.logger.Debug("Retrying", "delay", l.RetryDelay)
			if err := l.wait(ctx); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("failed to generate after %d attempts: %w", l.MaxRetries+1, lastErr)
}

func (l *LLMImpl) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(l.RetryDelay):
		return nil
	}
}

func (l *LLMImpl) attemptGenerate(ctx context.Context, prompt string) (*providers.Response, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, NewLLMError(ErrorTypeRequest, "rate limiter wait aborted", err)
	}

	reqBody, err := l.Provider.PrepareRequest(prompt, l.Options)
	if err != nil {
		return nil, NewLLMError(ErrorTypeRequest, "failed to prepare request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.Provider.Endpoint(), bytes.NewReader(reqBody))
	if err != nil {
		return nil, NewLLMError(ErrorTypeRequest, "failed to create request", err)
	}

	for k, v := range l.Provider.Headers() {
		req.Header.Set(k, v)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, NewLLMError(ErrorTypeRequest, "failed to send request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewLLMError(ErrorTypeResponse, "failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		l.logger.Error("API error", "provider", l.Provider.Name(), "status", resp.StatusCode, "body", string(body))
		return nil, statusError(resp.StatusCode)
	}

	result, err := l.Provider.ParseResponse(body)
	if err != nil {
		return nil, NewLLMError(ErrorTypeResponse, "failed to parse response", err)
	}

	// Some providers omit usage. Estimate it so cost accounting still works.
	if result.Usage == nil {
		if l.tokens != nil {
			result.Usage = providers.NewUsage(l.tokens.Count(prompt), l.tokens.Count(result.Text))
			l.logger.Debug("Usage missing from response, estimated from token counts",
				"input_tokens", result.Usage.InputTokens, "output_tokens", result.Usage.OutputTokens)
		} else {
			result.Usage = providers.NewUsage(0, 0)
		}
	}

	l.logger.Debug("Text generated successfully", "tokens", result.Usage.TotalTokens)
	return result, nil
}

func statusError(statusCode int) *LLMError {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return NewLLMError(ErrorTypeAuthentication, fmt.Sprintf("API error: status code %d", statusCode), nil)
	case http.StatusTooManyRequests:
		return NewLLMError(ErrorTypeRateLimit, fmt.Sprintf("API error: status code %d", statusCode), nil)
	default:
		return NewLLMError(ErrorTypeAPI, fmt.Sprintf("API error: status code %d", statusCode), nil)
	}
}
