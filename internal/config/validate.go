package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a config file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("config validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if strings.TrimSpace(cfg.Output.Dir) == "" {
		collector.add("output.dir", "is required")
	}
	if strings.TrimSpace(cfg.Council.BaseURL) == "" {
		collector.add("council.base_url", "is required")
	}
	if strings.TrimSpace(cfg.Council.Chairman) == "" {
		collector.add("council.chairman", "is required")
	}
	if cfg.Council.MaxTokens < 0 {
		collector.add("council.max_tokens", "must be >= 0")
	}
	if cfg.Council.Temperature < 0 {
		collector.add("council.temperature", "must be >= 0")
	}

	if len(cfg.Tiers) == 0 {
		collector.add("tiers", "at least one tier is required")
	}
	tierNames := map[string]struct{}{}
	for i, tier := range cfg.Tiers {
		fieldPrefix := fmt.Sprintf("tiers[%d]", i)
		name := strings.TrimSpace(tier.Name)
		if name == "" {
			collector.add(fieldPrefix+".name", "is required")
		} else if _, exists := tierNames[name]; exists {
			collector.add("tiers.name", fmt.Sprintf("duplicate name %q", name))
		} else {
			tierNames[name] = struct{}{}
		}
		if len(tier.Models) == 0 {
			collector.add(fieldPrefix+".models", "at least one model is required")
		}
		for j, model := range tier.Models {
			if strings.TrimSpace(model) == "" {
				collector.add(fmt.Sprintf("%s.models[%d]", fieldPrefix, j), "is required")
			}
		}
	}
	if _, ok := tierNames[TierStandard]; !ok && len(cfg.Tiers) > 0 {
		collector.add("tiers", fmt.Sprintf("a %q tier is required as the fallback roster", TierStandard))
	}

	return collector.result()
}
