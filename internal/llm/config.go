// Package llm provides the generative-model client abstraction used by the
// feedback generator. The abstraction keeps the provider pluggable so the
// guidance strategy can be exercised with a stub client in tests.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultModel is the generative model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Generation defaults. Low temperature favors deterministic mentor feedback;
// the token cap bounds response size for section parsing.
const (
	DefaultTemperature     float32 = 0.4
	DefaultMaxOutputTokens int32   = 600
)

// Config holds the generative model configuration
type Config struct {
	Provider        Provider
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderGemini,
		Model:           DefaultModel,
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxOutputTokens,
	}
}

// WithModel returns a copy of the config with the model replaced.
// An empty model name keeps the configured one.
func (c *Config) WithModel(model string) *Config {
	copied := *c
	if model != "" {
		copied.Model = model
	}
	return &copied
}
