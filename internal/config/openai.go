package config

import (
	"fmt"
	"os"
)

type OpenAIConfig struct {
	APIKey string
	Model  string
}

// LoadOpenAIConfig reads the OpenAI settings from environment variables
func LoadOpenAIConfig() *OpenAIConfig {
	return &OpenAIConfig{
		APIKey: os.Getenv("OPENAI_API_KEY"),
		Model:  getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
	}
}

// ValidateConfig checks that the settings are usable
func (c *OpenAIConfig) ValidateConfig() error {
	if c.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	if c.Model == "" {
		return fmt.Errorf("OPENAI_MODEL must not be empty")
	}

	return nil
}

// helper functions for reading environment variables
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
