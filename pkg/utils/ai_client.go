package utils

import (
	"context"
	"fmt"
	"strings"
)

// Sampling parameters sent with every generation request. Not user-configurable.
const (
	genTemperature     = 1.0
	genTopP            = 0.95
	genTopK            = 64
	genMaxOutputTokens = 8192
)

// TextGeneratorInterface produces free-form text for a prompt. Implementations
// make exactly one attempt per call and leave fallback handling to callers.
type TextGeneratorInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// NewTextGenerator Factory function to create either OpenAI or Gemini client based on config
func NewTextGenerator(provider, apiKey, model string) (TextGeneratorInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITextClient(apiKey, model)
	case "gemini":
		return NewGeminiTextClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
