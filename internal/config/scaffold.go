package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigFile = `version: 1

output:
  dir: "evals"

council:
  base_url: "https://openrouter.ai/api/v1"
  chairman: "google/gemini-2.5-pro"
  max_tokens: 4096
  temperature: 0.0

tiers:
  - name: premium
    description: "Frontier models for maximum answer quality"
    models:
      - "openai/gpt-4.1"
      - "anthropic/claude-sonnet-4"
      - "google/gemini-2.5-pro"
      - "x-ai/grok-3"
  - name: standard
    description: "Mid-range models balancing quality and cost"
    models:
      - "openai/gpt-4.1-mini"
      - "anthropic/claude-3.5-haiku"
      - "google/gemini-2.5-flash"
      - "deepseek/deepseek-chat-v3-0324"
  - name: budget
    description: "Small models for cheap smoke runs"
    models:
      - "openai/gpt-4.1-nano"
      - "google/gemini-2.5-flash-lite"
      - "meta-llama/llama-3.3-70b-instruct"
      - "mistralai/mistral-small-3.2-24b-instruct"
`

// Scaffold writes a starter config file at path.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigFile), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
