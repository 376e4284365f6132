package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITextClient implements TextGeneratorInterface using OpenAI chat models
type OpenAITextClient struct {
	client *openai.Client
	model  string
}

// NewOpenAITextClient creates a new OpenAI client
func NewOpenAITextClient(apiKey, model string) (TextGeneratorInterface, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAITextClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// GenerateText sends the prompt as a single user message and returns the
// completion text. TopK has no OpenAI equivalent and is not sent.
func (c *OpenAITextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: genTemperature,
		TopP:        genTopP,
		MaxTokens:   genMaxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	return openaiResponseText(resp)
}

// openaiResponseText extracts the first choice. A response with no usable
// text maps to ErrEmptyAIResponse.
func openaiResponseText(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", ErrEmptyAIResponse
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyAIResponse
	}
	return content, nil
}
