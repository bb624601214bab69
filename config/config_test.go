package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsrini3/prompt-optimizer/internal/logging"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 0.7, cfg.Temperature)
	assert.Equal(t, 500, cfg.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 0.00015, cfg.InputTokenRate)
	assert.Equal(t, 0.0006, cfg.OutputTokenRate)
	assert.Equal(t, 10, cfg.MinPromptLength)

	require.NoError(t, cfg.Validate())
}

func TestApplyOptions(t *testing.T) {
	cfg := NewConfig()

	ApplyOptions(cfg,
		SetProvider("mock"),
		SetModel("test-model"),
		SetTemperature(0.2),
		SetMaxTokens(256),
		SetAPIKey("secret"),
		SetTokenRates(0.001, 0.002),
		SetMinPromptLength(5),
		SetLogLevel(logging.LogLevelDebug),
	)

	assert.Equal(t, "mock", cfg.Provider)
	assert.Equal(t, "test-model", cfg.Model)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 256, cfg.MaxTokens)
	assert.Equal(t, "secret", cfg.APIKeys["mock"], "API key is stored under the active provider")
	assert.Equal(t, 0.001, cfg.InputTokenRate)
	assert.Equal(t, 0.002, cfg.OutputTokenRate)
	assert.Equal(t, 5, cfg.MinPromptLength)
	assert.Equal(t, logging.LogLevelDebug, cfg.LogLevel)
}

func TestSetMaxTokensFloorsAtOne(t *testing.T) {
	cfg := NewConfig()
	ApplyOptions(cfg, SetMaxTokens(0))
	assert.Equal(t, 1, cfg.MaxTokens)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_MODEL", "gpt-4o")
	t.Setenv("LLM_TEMPERATURE", "0.3")
	t.Setenv("LLM_MAX_TOKENS", "250")
	t.Setenv("LLM_LOG_LEVEL", "DEBUG")
	t.Setenv("OPENAI_API_KEY", "sk-test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 0.3, cfg.Temperature)
	assert.Equal(t, 250, cfg.MaxTokens)
	assert.Equal(t, logging.LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, "sk-test-key", cfg.APIKeys["openai"])
}

func TestValidateRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"temperature above range", func(c *Config) { c.Temperature = 3.0 }},
		{"negative input rate", func(c *Config) { c.InputTokenRate = -1 }},
		{"zero requests per minute", func(c *Config) { c.RequestsPerMinute = 0 }},
		{"empty model", func(c *Config) { c.Model = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
