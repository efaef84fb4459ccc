package config

import "strings"

// Normalize fills omitted fields with built-in defaults.
func Normalize(cfg *Config) {
	defaults := Default()
	if strings.TrimSpace(cfg.Output.Dir) == "" {
		cfg.Output.Dir = defaults.Output.Dir
	}
	if strings.TrimSpace(cfg.Council.BaseURL) == "" {
		cfg.Council.BaseURL = defaults.Council.BaseURL
	}
	if strings.TrimSpace(cfg.Council.Chairman) == "" {
		cfg.Council.Chairman = defaults.Council.Chairman
	}
	if cfg.Council.MaxTokens == 0 {
		cfg.Council.MaxTokens = defaults.Council.MaxTokens
	}
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = defaults.Tiers
	}
}
