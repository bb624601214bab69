package providers

import (
	"encoding/json"
	"fmt"

	"github.com/rsrini3/prompt-optimizer/config"
	"github.com/rsrini3/prompt-optimizer/internal/logging"
)

// OpenAIProvider implements the Provider interface for OpenAI's chat
// completions API.
type OpenAIProvider struct {
	apiKey       string
	model        string
	extraHeaders map[string]string
	options      map[string]any
	logger       logging.Logger
}

// NewOpenAIProvider creates a new OpenAI provider instance
func NewOpenAIProvider(apiKey, model string, extraHeaders map[string]string) Provider {
	if extraHeaders == nil {
		extraHeaders = make(map[string]string)
	}
	return &OpenAIProvider{
		apiKey:       apiKey,
		model:        model,
		extraHeaders: extraHeaders,
		options:      make(map[string]any),
		logger:       logging.NewLogger(logging.LogLevelWarn),
	}
}

// Name returns the provider's name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Endpoint returns the API endpoint for OpenAI
func (p *OpenAIProvider) Endpoint() string {
	return "https://api.openai.com/v1/chat/completions"
}

// Headers returns the necessary headers for API requests
func (p *OpenAIProvider) Headers() map[string]string {
	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + p.apiKey,
	}

	for key, value := range p.extraHeaders {
		headers[key] = value
	}

	return headers
}

// SetExtraHeaders sets additional headers for the API request
func (p *OpenAIProvider) SetExtraHeaders(extraHeaders map[string]string) {
	p.extraHeaders = extraHeaders
}

// SetOption sets a specific option for the provider
func (p *OpenAIProvider) SetOption(key string, value any) {
	p.options[key] = value
	p.logger.Debug("Option set", "key", key, "value", value)
}

// SetDefaultOptions sets default options based on the provided configuration
func (p *OpenAIProvider) SetDefaultOptions(cfg *config.Config) {
	p.SetOption("temperature", cfg.Temperature)
	p.SetOption("max_tokens", cfg.MaxTokens)
	p.logger.Debug("Default options set", "temperature", cfg.Temperature, "max_tokens", cfg.MaxTokens)
}

// SetLogger sets the logger for the provider
func (p *OpenAIProvider) SetLogger(logger logging.Logger) {
	p.logger = logger
}

// PrepareRequest builds the request body for a single-turn user message.
func (p *OpenAIProvider) PrepareRequest(prompt string, options map[string]any) ([]byte, error) {
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

	reqJSON, err := json.Marshal(request)
	if err != nil {
		p.logger.Error("Failed to marshal request", "error", err)
		return nil, err
	}

	p.logger.Debug("Request prepared", "request", string(reqJSON))
	return reqJSON, nil
}

// ParseResponse extracts the response text and token usage from the API
// response body.
func (p *OpenAIProvider) ParseResponse(body []byte) (*Response, error) {
	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
		} `json:"usage"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API")
	}

	return &Response{
		Text:  response.Choices[0].Message.Content,
		Usage: NewUsage(response.Usage.PromptTokens, response.Usage.CompletionTokens),
	}, nil
}
