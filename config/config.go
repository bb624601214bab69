// File: config/config.go

package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/rsrini3/prompt-optimizer/internal/logging"
)

// Config holds the process-wide settings for variant evaluation: the
// completion provider, its sampling parameters, and the per-token pricing
// used for cost estimates. API credentials and pricing are caller-supplied
// configuration, never internal state.
type Config struct {
	Provider    string        `env:"LLM_PROVIDER" envDefault:"openai" validate:"required"`
	Model       string        `env:"LLM_MODEL" envDefault:"gpt-4o-mini" validate:"required"`
	Temperature float64       `env:"LLM_TEMPERATURE" envDefault:"0.7" validate:"gte=0,lte=2"`
	MaxTokens   int           `env:"LLM_MAX_TOKENS" envDefault:"500" validate:"min=1"`
	Timeout     time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
	MaxRetries  int           `env:"LLM_MAX_RETRIES" envDefault:"3" validate:"min=0"`
	RetryDelay  time.Duration `env:"LLM_RETRY_DELAY" envDefault:"2s"`

	// RequestsPerMinute bounds the rate of provider calls across a batch.
	RequestsPerMinute int `env:"LLM_REQUESTS_PER_MINUTE" envDefault:"60" validate:"min=1"`

	// Pricing in USD per 1K tokens. Defaults track gpt-4o-mini published rates.
	InputTokenRate  float64 `env:"LLM_INPUT_TOKEN_RATE" envDefault:"0.00015" validate:"gt=0"`
	OutputTokenRate float64 `env:"LLM_OUTPUT_TOKEN_RATE" envDefault:"0.0006" validate:"gt=0"`

	// MinPromptLength is enforced by the entry point before any variants
	// are generated.
	MinPromptLength int `env:"MIN_PROMPT_LENGTH" envDefault:"10" validate:"min=1"`

	APIKeys      map[string]string
	LogLevel     logging.LogLevel `env:"LLM_LOG_LEVEL" envDefault:"WARN"`
	ExtraHeaders map[string]string
}

var validate = validator.New()

// LoadConfig builds a Config from environment variables, scanning the
// environment for *_API_KEY entries.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		APIKeys:      make(map[string]string),
		ExtraHeaders: make(map[string]string),
	}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	loadAPIKeys(cfg)
	return cfg, nil
}

func loadAPIKeys(cfg *Config) {
	for _, envVar := range os.Environ() {
		key, value, found := strings.Cut(envVar, "=")
		if found && strings.HasSuffix(strings.ToUpper(key), "_API_KEY") {
			provider := strings.TrimSuffix(strings.ToUpper(key), "_API_KEY")
			cfg.APIKeys[strings.ToLower(provider)] = value
		}
	}
}

// Validate checks the config against its struct tags.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

type ConfigOption func(*Config)

// NewConfig returns a Config with defaults suitable for evaluating variants
// against a cheap model tier.
func NewConfig() *Config {
	return &Config{
		Provider:          "openai",
		Model:             "gpt-4o-mini",
		Temperature:       0.7,
		MaxTokens:         500,
		Timeout:           30 * time.Second,
		MaxRetries:        3,
		RetryDelay:        2 * time.Second,
		RequestsPerMinute: 60,
		InputTokenRate:    0.00015,
		OutputTokenRate:   0.0006,
		MinPromptLength:   10,
		APIKeys:           make(map[string]string),
		LogLevel:          logging.LogLevelWarn,
		ExtraHeaders:      make(map[string]string),
	}
}

func SetProvider(provider string) ConfigOption {
	return func(c *Config) {
		c.Provider = provider
	}
}

func SetModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

func SetTemperature(temperature float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = temperature
	}
}

func SetMaxTokens(maxTokens int) ConfigOption {
	return func(c *Config) {
		if maxTokens < 1 {
			maxTokens = 1
		}
		c.MaxTokens = maxTokens
	}
}

func SetTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

func SetAPIKey(apiKey string) ConfigOption {
	return func(c *Config) {
		if c.APIKeys == nil {
			c.APIKeys = make(map[string]string)
		}
		c.APIKeys[c.Provider] = apiKey
	}
}

func SetMaxRetries(maxRetries int) ConfigOption {
	return func(c *Config) {
		c.MaxRetries = maxRetries
	}
}

func SetRetryDelay(retryDelay time.Duration) ConfigOption {
	return func(c *Config) {
		c.RetryDelay = retryDelay
	}
}

func SetRequestsPerMinute(rpm int) ConfigOption {
	return func(c *Config) {
		c.RequestsPerMinute = rpm
	}
}

// SetTokenRates overrides the per-1K-token pricing used for cost estimates.
func SetTokenRates(inputRate, outputRate float64) ConfigOption {
	return func(c *Config) {
		c.InputTokenRate = inputRate
		c.OutputTokenRate = outputRate
	}
}

func SetMinPromptLength(n int) ConfigOption {
	return func(c *Config) {
		c.MinPromptLength = n
	}
}

func SetLogLevel(level logging.LogLevel) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

func SetExtraHeaders(headers map[string]string) ConfigOption {
	return func(c *Config) {
		if c.ExtraHeaders == nil {
			c.ExtraHeaders = make(map[string]string)
		}
		for k, v := range headers {
			c.ExtraHeaders[k] = v
		}
	}
}

func ApplyOptions(cfg *Config, options ...ConfigOption) {
	for _, option := range options {
		option(cfg)
	}
}
