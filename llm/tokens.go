package llm

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"

	"github.com/rsrini3/prompt-optimizer/internal/logging"
)

// TokenCounter counts tokens using the encoding for a given model. It is
// used to fill in usage figures when a provider response omits them, so
// cost estimates stay available.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTokenCounter creates a counter for the given model, falling back to the
// gpt-4o encoding when the model is unknown.
func NewTokenCounter(model string, logger logging.Logger) (*TokenCounter, error) {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		logger.Warn("Failed to get encoding for model, defaulting to gpt-4o", "model", model, "error", err)
		encoding, err = tiktoken.EncodingForModel("gpt-4o")
		if err != nil {
			return nil, fmt.Errorf("failed to get default encoding: %w", err)
		}
	}

	return &TokenCounter{encoding: encoding}, nil
}

// Count returns the number of tokens in the given text.
func (tc *TokenCounter) Count(text string) int {
	return len(tc.encoding.Encode(text, nil, nil))
}
