package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaplan/careercompass/internal/types"
)

func TestLoadCareers_ValidCatalog(t *testing.T) {
	careers, err := LoadCareers("testdata/careers.json")

	require.NoError(t, err)
	require.Len(t, careers, 2)

	backend := careers[0]
	assert.Equal(t, "backend-developer", backend.ID)
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, backend.RequiredSkills)
	assert.Equal(t, types.DemandHigh, backend.Demand)
}

func TestLoadCareers_DefaultsApplied(t *testing.T) {
	careers, err := LoadCareers("testdata/careers.json")

	require.NoError(t, err)

	analyst := careers[1]
	// Declared nothing beyond the basics; inference fills the rest
	assert.Equal(t, types.DemandMedium, analyst.Demand)
	assert.Equal(t, types.LevelIntermediate, analyst.DifficultyLevel)
	require.NotNil(t, analyst.ExperienceRange)
	assert.Equal(t, 0, analyst.ExperienceRange.Min) // "Junior" title keyword
	assert.Equal(t, 2, analyst.ExperienceRange.Max)
	assert.NotEmpty(t, analyst.Industries)
}

func TestLoadCareers_InvalidCatalogRejected(t *testing.T) {
	_, err := LoadCareers("testdata/careers_invalid.json")

	assert.Error(t, err)
}

func TestLoadCareers_MissingFile(t *testing.T) {
	_, err := LoadCareers("testdata/does_not_exist.json")

	assert.Error(t, err)
}

func TestLoadCohortStats_ValidFile(t *testing.T) {
	stats, err := LoadCohortStats("testdata/cohort.json")

	require.NoError(t, err)
	require.Len(t, stats.Buckets, 3)

	bucket := stats.Lookup("IT", 2)
	require.NotNil(t, bucket)
	assert.Equal(t, 420, bucket.SampleSize)
}

func TestLoadCohortStats_MissingFileIsEmptyStats(t *testing.T) {
	stats, err := LoadCohortStats("testdata/does_not_exist.json")

	require.NoError(t, err)
	assert.Empty(t, stats.Buckets)
}

func TestLoadCohortStats_EmptyPathIsEmptyStats(t *testing.T) {
	stats, err := LoadCohortStats("")

	require.NoError(t, err)
	assert.Empty(t, stats.Buckets)
}

func TestLoadSnapshot_CombinesSources(t *testing.T) {
	snapshot, err := LoadSnapshot("testdata/careers.json", "testdata/cohort.json")

	require.NoError(t, err)
	assert.Len(t, snapshot.Careers, 2)
	assert.Len(t, snapshot.Cohort.Buckets, 3)
	assert.False(t, snapshot.LoadedAt.IsZero())

	career, ok := snapshot.CareerByID("backend-developer")
	require.True(t, ok)
	assert.Equal(t, "Backend Developer", career.Title)

	_, ok = snapshot.CareerByID("nope")
	assert.False(t, ok)
}

func TestApplyDefaults_NeverOverwritesDeclaredValues(t *testing.T) {
	career := types.CareerDefinition{
		ID:              "x",
		Title:           "Senior Platform Architect",
		Demand:          types.DemandLow,
		DifficultyLevel: types.LevelAdvanced,
		ExperienceRange: &types.ExperienceRange{Min: 1, Max: 2},
		Industries:      []string{"Aerospace"},
	}

	ApplyDefaults(&career)

	assert.Equal(t, types.DemandLow, career.Demand)
	assert.Equal(t, types.LevelAdvanced, career.DifficultyLevel)
	assert.Equal(t, &types.ExperienceRange{Min: 1, Max: 2}, career.ExperienceRange)
	assert.Equal(t, []string{"Aerospace"}, career.Industries)
}

func TestInferExperienceRange_TitleKeywords(t *testing.T) {
	assert.Equal(t, &types.ExperienceRange{Min: 0, Max: 2}, inferExperienceRange("Junior Developer"))
	assert.Equal(t, &types.ExperienceRange{Min: 5, Max: 15}, inferExperienceRange("Senior Engineer"))
	assert.Equal(t, &types.ExperienceRange{Min: 7, Max: 20}, inferExperienceRange("Engineering Manager"))
	assert.Equal(t, &types.ExperienceRange{Min: 2, Max: 5}, inferExperienceRange("Backend Developer"))
}
