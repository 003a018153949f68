// Package llm provides centralized LLM configuration and client abstractions.
// It supports switching between providers and model tiers per call site.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: per-listing classification and scoring
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: structured profile extraction
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex generation: letter writing
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderOpenAI is the OpenAI chat completions provider (default)
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Default OpenAI settings, overridable via Config.
const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "gpt-4o-mini"
	DefaultTemperature   = 0.1
)

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	BaseURL     string // OpenAI-compatible API base URL; ignored by Gemini
	Temperature float32
	Models      map[ModelTier]string
}

// DefaultConfig returns the default configuration (currently OpenAI)
func DefaultConfig() *Config {
	return DefaultOpenAIConfig()
}

// DefaultOpenAIConfig returns the default OpenAI configuration. A single
// model serves every tier unless overridden with WithModel.
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider:    ProviderOpenAI,
		BaseURL:     DefaultOpenAIBaseURL,
		Temperature: DefaultTemperature,
		Models: map[ModelTier]string{
			TierLite:     DefaultOpenAIModel,
			TierStandard: DefaultOpenAIModel,
			TierAdvanced: DefaultOpenAIModel,
		},
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Temperature: DefaultTemperature,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:    c.Provider,
		BaseURL:     c.BaseURL,
		Temperature: c.Temperature,
		Models:      make(map[ModelTier]string),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}

// WithAllModels returns a new Config with every tier mapped to model.
func (c *Config) WithAllModels(model string) *Config {
	cfg := c.WithModel(TierLite, model)
	cfg = cfg.WithModel(TierStandard, model)
	return cfg.WithModel(TierAdvanced, model)
}
