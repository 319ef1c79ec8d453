// Package enrichment provides optional LLM-backed narrative generation
// layered on top of the engine's structured output. The engine's numeric
// guarantees never depend on this package being configured or reachable.
package enrichment

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for short summaries and single-paragraph narratives
	TierLite ModelTier = "lite"
	// TierStandard is for multi-section career narratives
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for narrative generation
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a given tier, falling back to lite.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
