// cmd/fx/genai_fx/module.go
package genai_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"dinewise/pkg/utils"
)

var Module = fx.Provide(ProvideTextGenerator)

// TextGenConfig holds configuration for text-generation clients
type TextGenConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideTextGenerator creates a text-generation client based on environment variables
func ProvideTextGenerator() (utils.TextGeneratorInterface, error) {
	config := getTextGenConfig()

	log.Printf("Initializing %s text-generation client with model: %s", config.Provider, config.Model)

	client, err := utils.NewTextGenerator(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", config.Provider, err)
	}
	return client, nil
}

// getTextGenConfig reads configuration from environment variables
func getTextGenConfig() TextGenConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-pro")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return TextGenConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
