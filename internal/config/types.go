// Package config holds the eval harness configuration: output location,
// council connection settings, and the model tier rosters.
package config

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the parsed .conclave/config.yml.
type Config struct {
	Version int           `yaml:"version"`
	Output  OutputConfig  `yaml:"output"`
	Council CouncilConfig `yaml:"council"`
	Tiers   []TierConfig  `yaml:"tiers"`
}

// OutputConfig controls where run files are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// CouncilConfig carries the OpenRouter connection and chairman settings.
type CouncilConfig struct {
	BaseURL     string  `yaml:"base_url"`
	Chairman    string  `yaml:"chairman"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// TierConfig names a model roster.
type TierConfig struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Models      []string `yaml:"models"`
}

// ParseConfig decodes a YAML config document, rejecting unknown fields and
// multi-document input.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Tier returns the named tier roster.
func (c Config) Tier(name string) (TierConfig, bool) {
	for _, tier := range c.Tiers {
		if tier.Name == name {
			return tier, true
		}
	}
	return TierConfig{}, false
}

// TierModels returns the roster for the named tier, falling back to the
// standard tier when the name is unknown. Callers keep the requested name in
// their records even when the fallback roster answered.
func (c Config) TierModels(name string) []string {
	if tier, ok := c.Tier(name); ok {
		return tier.Models
	}
	if tier, ok := c.Tier(TierStandard); ok {
		return tier.Models
	}
	return nil
}
