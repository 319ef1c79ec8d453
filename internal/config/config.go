// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkaplan/careercompass/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags. Secrets (API key, database URL) are normally read
// from the environment and only fall back to the file.
type Config struct {
	// Reference data
	Careers string `json:"careers,omitempty"` // Path to the career catalog JSON
	Cohort  string `json:"cohort,omitempty"`  // Path to the cohort statistics JSON

	// Policy knobs (scoring Open Questions are configuration, not constants)
	TopN       int              `json:"top_n,omitempty"`       // Matches returned per ranking
	BucketSize int              `json:"bucket_size,omitempty"` // Skills per roadmap milestone
	Weights    *scoring.Weights `json:"weights,omitempty"`     // Scoring weight overrides

	// Skill matching
	Synonyms map[string]string `json:"synonyms,omitempty"` // Extra skill synonyms (variant -> canonical)

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed breakdowns
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for narrative enrichment
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.BucketSize < 0 {
		return fmt.Errorf("config error: 'bucket_size' must be non-negative")
	}

	if c.Careers != "" {
		if _, err := os.Stat(c.Careers); os.IsNotExist(err) {
			return fmt.Errorf("config error: career catalog not found: %s", c.Careers)
		}
	}

	if c.Weights != nil {
		w := *c.Weights
		if w.SkillCoverage < 0 || w.InterestOverlap < 0 || w.ExperienceAlignment < 0 || w.GoalAlignment < 0 ||
			w.ContentBlend < 0 || w.CollaborativeBlend < 0 {
			return fmt.Errorf("config error: weights must be non-negative")
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flags still win after merging.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Careers == "" {
		result.Careers = defaults.Careers
	}
	if result.Cohort == "" {
		result.Cohort = defaults.Cohort
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.BucketSize == 0 {
		result.BucketSize = defaults.BucketSize
	}
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}
	if result.Synonyms == nil {
		result.Synonyms = defaults.Synonyms
	}

	return result
}

// EffectiveWeights resolves the scoring policy: file overrides when present,
// documented defaults otherwise.
func (c *Config) EffectiveWeights() scoring.Weights {
	if c.Weights == nil {
		return scoring.DefaultWeights()
	}
	return c.Weights.Normalized()
}
