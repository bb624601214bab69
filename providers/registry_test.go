package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderRegistration(t *testing.T) {
	registry := NewProviderRegistry()

	for _, providerName := range []string{"openai", "mock"} {
		t.Run(providerName, func(t *testing.T) {
			provider, err := registry.Get(providerName, "test-api-key", "test-model", nil)
			require.NoError(t, err)
			assert.NotNil(t, provider)
			assert.Equal(t, providerName, provider.Name())
		})
	}
}

func TestRegistryUnknownProvider(t *testing.T) {
	registry := NewProviderRegistry()

	_, err := registry.Get("nonexistent", "key", "model", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestRegistrySelectiveRegistration(t *testing.T) {
	registry := NewProviderRegistry("openai")

	_, err := registry.Get("openai", "key", "model", nil)
	require.NoError(t, err)

	_, err = registry.Get("mock", "key", "model", nil)
	require.Error(t, err, "unrequested providers stay unregistered")
}

func TestRegistryRegisterCustomProvider(t *testing.T) {
	registry := NewProviderRegistry()
	registry.Register("custom", func(_, model string, extraHeaders map[string]string) Provider {
		return NewMockProvider("http://localhost:9999", model, extraHeaders)
	})

	provider, err := registry.Get("custom", "key", "model", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", provider.Endpoint())
}
