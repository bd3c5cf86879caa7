package ai

// FactoryConfig holds inputs to construct a client without leaking provider details.
type FactoryConfig struct {
	Provider  string // only "openai" for now
	OpenAIKey string
	// Defaults
	Model               string
	Temperature         float64
	MaxCompletionTokens int
}

// NewClient returns a provider-agnostic AI client.
func NewClient(cfg FactoryConfig) Client {
	switch cfg.Provider {
	default:
		return newOpenAIClient(cfg)
	}
}
