package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.).
type LLMProvider interface {
	// Generate sends prompt to the model and returns the provider's raw
	// response object. Use an Extractor to turn it into text.
	Generate(ctx context.Context, prompt string, params GenerationParams) (any, error)

	// Name identifies the provider in logs.
	Name() string
}
