package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mkaplan/careercompass/internal/config"
	"github.com/mkaplan/careercompass/internal/types"
)

// defaultConfig holds the fallback values used when no config file is given.
var defaultConfig = config.Config{
	Careers:    "data/careers.json",
	Cohort:     "data/cohort.json",
	TopN:       3,
	BucketSize: 3,
}

// loadEffectiveConfig resolves the configuration: optional file merged with
// defaults, secrets filled from the environment.
func loadEffectiveConfig(path string) (config.Config, error) {
	cfg := config.Config{}

	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(defaultConfig)

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadProfile reads and validates a user profile from a JSON file.
func loadProfile(path string) (*types.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &profile, nil
}

// printJSON writes a value as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
