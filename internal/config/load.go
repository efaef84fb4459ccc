package config

import (
	"errors"
	"fmt"
	"os"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads the config at path, or searches upward from the working
// directory when path is empty. When no config file exists the built-in
// defaults are returned.
func Resolve(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	found, err := FindConfigPath("")
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Default(), nil
		}
		return Config{}, err
	}
	return Load(found)
}
