package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("AZURE_STORAGE_CONNECTION_STRING", "DefaultEndpointsProtocol=https;AccountName=test;AccountKey=abc;EndpointSuffix=core.windows.net")
	t.Setenv("OPENAI_API_KEY", "sk-test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load("gateway")
	require.NoError(t, err)

	assert.Equal(t, "gateway", cfg.Service.Name)
	assert.Equal(t, 8000, cfg.Service.Port)
	assert.Equal(t, "gpt-4o", cfg.Provider.Model)
	assert.False(t, cfg.Telemetry.EnablePprof)
}

func TestLoad_MissingConnectionString(t *testing.T) {
	t.Setenv("AZURE_STORAGE_CONNECTION_STRING", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	_, err := Load("gateway")
	assert.Error(t, err)
}

func TestLoad_MissingProviderKey(t *testing.T) {
	t.Setenv("AZURE_STORAGE_CONNECTION_STRING", "DefaultEndpointsProtocol=https;AccountName=test;AccountKey=abc")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load("gateway")
	assert.Error(t, err)
}

// Each endpoint key is configured independently; a configured endpoint
// resolves while an unconfigured one does not.
func TestEndpointKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SUMMARIZE_API_KEY", "summarize-key-123")

	cfg, err := Load("gateway")
	require.NoError(t, err)

	key, ok := cfg.EndpointKey("/summarize")
	assert.True(t, ok)
	assert.Equal(t, "summarize-key-123", key)

	_, ok = cfg.EndpointKey("/sentiment")
	assert.False(t, ok)

	_, ok = cfg.EndpointKey("/no-such-endpoint")
	assert.False(t, ok)
}
