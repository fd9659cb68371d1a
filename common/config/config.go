package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all service configuration
type Config struct {
	Service   ServiceConfig
	Storage   StorageConfig
	Provider  ProviderConfig
	Auth      AuthConfig
	Telemetry TelemetryConfig
}

// ServiceConfig holds service-specific settings
type ServiceConfig struct {
	Name        string
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string
}

// StorageConfig holds Azure Blob Storage settings
type StorageConfig struct {
	ConnectionString string
}

// ProviderConfig holds LLM provider settings
type ProviderConfig struct {
	APIKey string
	Model  string
}

// AuthConfig maps each task endpoint to its own API key.
// There is no shared master key; every endpoint is configured independently.
type AuthConfig struct {
	EndpointKeys map[string]string
}

// TelemetryConfig holds observability settings
type TelemetryConfig struct {
	EnablePprof bool
	PprofPort   int
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	cfg := &Config{
		Service: ServiceConfig{
			Name:        serviceName,
			Port:        getEnvInt("PORT", 8000),
			Environment: getEnv("ENVIRONMENT", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFormat:   getEnv("LOG_FORMAT", "text"), // Default to text for development
		},
		Storage: StorageConfig{
			ConnectionString: getEnv("AZURE_STORAGE_CONNECTION_STRING", ""),
		},
		Provider: ProviderConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
			Model:  getEnv("OPENAI_MODEL", "gpt-4o"),
		},
		Auth: AuthConfig{
			EndpointKeys: map[string]string{
				"/summarize":        getEnv("SUMMARIZE_API_KEY", ""),
				"/sentiment":        getEnv("SENTIMENT_API_KEY", ""),
				"/extract-keywords": getEnv("KEYWORDS_API_KEY", ""),
				"/translate":        getEnv("TRANSLATE_API_KEY", ""),
				"/structure-data":   getEnv("STRUCTURE_API_KEY", ""),
				"/detect-topics":    getEnv("TOPICS_API_KEY", ""),
			},
		},
		Telemetry: TelemetryConfig{
			EnablePprof: getEnvBool("ENABLE_PPROF", false),
			PprofPort:   getEnvInt("PPROF_PORT", 6060),
		},
	}

	return cfg, cfg.Validate()
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Service.Port < 1 || c.Service.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Service.Port)
	}

	if c.Storage.ConnectionString == "" {
		return fmt.Errorf("AZURE_STORAGE_CONNECTION_STRING is required")
	}

	if c.Provider.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	return nil
}

// EndpointKey returns the configured API key for an endpoint path.
// An empty second return means the endpoint has no key configured.
func (c *Config) EndpointKey(path string) (string, bool) {
	key, ok := c.Auth.EndpointKeys[path]
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
