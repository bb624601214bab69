package providers

import (
	"encoding/json"
	"fmt"

	"github.com/rsrini3/prompt-optimizer/config"
	"github.com/rsrini3/prompt-optimizer/internal/logging"
)

// MockProvider implements the Provider interface for testing purposes.
// It returns preset responses without requiring a live API.
type MockProvider struct {
	endpoint     string
	model        string
	extraHeaders map[string]string
	options      map[string]any
	logger       logging.Logger
	// Mock response configuration
	responseText string
	inputTokens  int
	outputTokens int
	shouldError  bool
	errorMsg     string
}

// NewMockProvider creates a new mock provider instance for testing.
func NewMockProvider(endpoint, model string, extraHeaders map[string]string) Provider {
	if extraHeaders == nil {
		extraHeaders = make(map[string]string)
	}
	return &MockProvider{
		endpoint:     endpoint,
		model:        model,
		extraHeaders: extraHeaders,
		options:      make(map[string]any),
		logger:       logging.NewLogger(logging.LogLevelWarn),
		responseText: "This is a mock response",
		inputTokens:  100,
		outputTokens: 50,
	}
}

// SetMockResponse configures the response text and token usage returned by
// ParseResponse.
func (p *MockProvider) SetMockResponse(response string, inputTokens, outputTokens int) {
	p.responseText = response
	p.inputTokens = inputTokens
	p.outputTokens = outputTokens
}

// SetMockError configures the mock to fail in ParseResponse
func (p *MockProvider) SetMockError(shouldError bool, errorMsg string) {
	p.shouldError = shouldError
	p.errorMsg = errorMsg
}

func (p *MockProvider) Name() string                              { return "mock" }
func (p *MockProvider) Endpoint() string                          { return p.endpoint }
func (p *MockProvider) SetLogger(logger logging.Logger)           { p.logger = logger }
func (p *MockProvider) SetOption(key string, value any)           { p.options[key] = value }
func (p *MockProvider) SetExtraHeaders(headers map[string]string) { p.extraHeaders = headers }

func (p *MockProvider) SetDefaultOptions(cfg *config.Config) {
	p.SetOption("temperature", cfg.Temperature)
	p.SetOption("max_tokens", cfg.MaxTokens)
}

func (p *MockProvider) Headers() map[string]string {
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	for key, value := range p.extraHeaders {
		headers[key] = value
	}
	return headers
}

func (p *MockProvider) PrepareRequest(prompt string, options map[string]any) ([]byte, error) {
	request := map[string]any{
		"model": p.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	for k, v := range p.options {
		request[k] = v
	}
	for k, v := range options {
		request[k] = v
	}
	return json.Marshal(request)
}

// ParseResponse ignores the body and returns the configured mock response.
func (p *MockProvider) ParseResponse(_ []byte) (*Response, error) {
	if p.shouldError {
		return nil, fmt.Errorf("%s", p.errorMsg)
	}
	return &Response{
		Text:  p.responseText,
		Usage: NewUsage(p.inputTokens, p.outputTokens),
	}, nil
}
