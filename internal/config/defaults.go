package config

// EnvAPIKey is the environment variable holding the OpenRouter API key.
const EnvAPIKey = "OPENROUTER_API_KEY"

// Built-in defaults applied when a config file omits a field.
const (
	DefaultBaseURL   = "https://openrouter.ai/api/v1"
	DefaultChairman  = "google/gemini-2.5-pro"
	DefaultOutputDir = "evals"
	DefaultMaxTokens = 4096
)

// Built-in tier names.
const (
	TierPremium  = "premium"
	TierStandard = "standard"
	TierBudget   = "budget"
)

// Default returns the built-in configuration used when no config file exists.
func Default() Config {
	return Config{
		Version: 1,
		Output:  OutputConfig{Dir: DefaultOutputDir},
		Council: CouncilConfig{
			BaseURL:   DefaultBaseURL,
			Chairman:  DefaultChairman,
			MaxTokens: DefaultMaxTokens,
		},
		Tiers: []TierConfig{
			{
				Name:        TierPremium,
				Description: "Frontier models for maximum answer quality",
				Models: []string{
					"openai/gpt-4.1",
					"anthropic/claude-sonnet-4",
					"google/gemini-2.5-pro",
					"x-ai/grok-3",
				},
			},
			{
				Name:        TierStandard,
				Description: "Mid-range models balancing quality and cost",
				Models: []string{
					"openai/gpt-4.1-mini",
					"anthropic/claude-3.5-haiku",
					"google/gemini-2.5-flash",
					"deepseek/deepseek-chat-v3-0324",
				},
			},
			{
				Name:        TierBudget,
				Description: "Small models for cheap smoke runs",
				Models: []string{
					"openai/gpt-4.1-nano",
					"google/gemini-2.5-flash-lite",
					"meta-llama/llama-3.3-70b-instruct",
					"mistralai/mistral-small-3.2-24b-instruct",
				},
			},
		},
	}
}
