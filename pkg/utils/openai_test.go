package utils

import (
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestOpenAIResponseText(t *testing.T) {
	tests := []struct {
		name    string
		resp    openai.ChatCompletionResponse
		want    string
		wantErr error
	}{
		{
			name:    "no choices",
			resp:    openai.ChatCompletionResponse{},
			wantErr: ErrEmptyAIResponse,
		},
		{
			name:    "whitespace only",
			resp:    chatResponse("   "),
			wantErr: ErrEmptyAIResponse,
		},
		{
			name: "first choice returned",
			resp: chatResponse("Decoration: fairy lights and white drapes"),
			want: "Decoration: fairy lights and white drapes",
		},
		{
			name: "surrounding whitespace preserved",
			resp: chatResponse("\nMenu ideas\n"),
			want: "\nMenu ideas\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := openaiResponseText(tt.resp)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewOpenAITextClientRequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAITextClient("", "gpt-4o-mini"); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestNewTextGeneratorRejectsUnknownProvider(t *testing.T) {
	if _, err := NewTextGenerator("anthropic", "key", "model"); err == nil {
		t.Fatal("expected an error for an unsupported provider")
	}
}

func TestNewTextGeneratorOpenAI(t *testing.T) {
	gen, err := NewTextGenerator("OpenAI", "test-key", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := gen.(*OpenAITextClient); !ok {
		t.Fatalf("expected *OpenAITextClient, got %T", gen)
	}
}
