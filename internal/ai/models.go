package ai

const (
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultOpenAIModel = "gpt-4o-mini"

	// DefaultTemperature keeps itineraries close to the requested format.
	DefaultTemperature float32 = 0.2
	DefaultMaxTokens   int32   = 800
)

// GenerationParams captures the per-call knobs passed to a provider.
type GenerationParams struct {
	// Model is the provider-specific model identifier. Empty selects the
	// provider default.
	Model string

	Temperature float32

	// MaxOutputTokens caps the reply length. Zero leaves the provider default.
	MaxOutputTokens int32
}

// DefaultParams returns the generation settings used by the planner.
func DefaultParams(model string) GenerationParams {
	return GenerationParams{
		Model:           model,
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxTokens,
	}
}
