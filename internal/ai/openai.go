package ai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements LLMProvider using the OpenAI chat completions API.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider returns a provider authenticated with apiKey.
func NewOpenAIProvider(apiKey string) (*OpenAIProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai: missing api key")
	}
	return &OpenAIProvider{client: openai.NewClient(apiKey)}, nil
}

func (p *OpenAIProvider) Name() string { return "openai" }

// Generate returns the openai.ChatCompletionResponse untouched.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, params GenerationParams) (any, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("openai: empty prompt")
	}

	model := params.Model
	if model == "" {
		model = DefaultOpenAIModel
	}
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: params.Temperature,
		MaxTokens:   int(params.MaxOutputTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("openai: create chat completion: %w", err)
	}
	return resp, nil
}
