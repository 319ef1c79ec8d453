package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaplan/careercompass/internal/scoring"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	cfg, err := LoadConfig("testdata/config.json")

	require.NoError(t, err)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, 2, cfg.BucketSize)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "React", cfg.Synonyms["rx"])
	require.NotNil(t, cfg.Weights)
	assert.InDelta(t, 0.5, cfg.Weights.SkillCoverage, 0.001)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("testdata/does_not_exist.json")

	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestValidate_RejectsNegativeValues(t *testing.T) {
	assert.Error(t, (&Config{TopN: -1}).Validate())
	assert.Error(t, (&Config{BucketSize: -2}).Validate())
	assert.NoError(t, (&Config{}).Validate())
}

func TestValidate_RejectsMissingCatalogFile(t *testing.T) {
	cfg := &Config{Careers: "testdata/no_such_catalog.json"}

	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNegativeWeights(t *testing.T) {
	cfg := &Config{Weights: &scoring.Weights{SkillCoverage: -0.1}}

	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsOnlyEmptyFields(t *testing.T) {
	cfg := Config{TopN: 7}
	defaults := Config{
		Careers:    "data/careers.json",
		TopN:       3,
		BucketSize: 3,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 7, merged.TopN)
	assert.Equal(t, "data/careers.json", merged.Careers)
	assert.Equal(t, 3, merged.BucketSize)
}

func TestEffectiveWeights_DefaultsWhenUnset(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, scoring.DefaultWeights(), cfg.EffectiveWeights())
}

func TestEffectiveWeights_NormalizesOverrides(t *testing.T) {
	cfg := &Config{Weights: &scoring.Weights{
		SkillCoverage:       2.0,
		InterestOverlap:     1.0,
		ExperienceAlignment: 0.5,
		GoalAlignment:       0.5,
		ContentBlend:        1.0,
		CollaborativeBlend:  1.0,
	}}

	w := cfg.EffectiveWeights()

	assert.InDelta(t, 0.5, w.SkillCoverage, 0.001)
	assert.InDelta(t, 0.5, w.ContentBlend, 0.001)
}
