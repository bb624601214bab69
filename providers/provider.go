// Package providers implements completion provider interfaces and their
// concrete implementations. The evaluator treats a provider as an opaque
// remote call: it prepares a request body, sends it, and parses the response
// text and token usage back out.
package providers

import (
	"github.com/rsrini3/prompt-optimizer/config"
	"github.com/rsrini3/prompt-optimizer/internal/logging"
)

// Provider defines the interface that all completion providers must implement.
type Provider interface {
	// Core identification and configuration
	Name() string
	Endpoint() string
	Headers() map[string]string
	SetExtraHeaders(extraHeaders map[string]string)
	SetDefaultOptions(cfg *config.Config)
	SetOption(key string, value any)
	SetLogger(logger logging.Logger)

	// Request preparation
	PrepareRequest(prompt string, options map[string]any) ([]byte, error)

	// Response handling
	ParseResponse(body []byte) (*Response, error)
}

// ProviderConstructor defines a function type for creating new provider
// instances. Each provider implementation must provide a constructor of this
// type.
type ProviderConstructor func(apiKey, model string, extraHeaders map[string]string) Provider
