package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaplan/careercompass/internal/types"
)

func rankCatalog() []types.CareerDefinition {
	return []types.CareerDefinition{
		{
			ID:               "backend-developer",
			Title:            "Backend Developer",
			Category:         "Information Technology",
			DifficultyLevel:  types.LevelIntermediate,
			RequiredSkills:   []string{"Go", "SQL", "Docker"},
			RelatedInterests: []string{"Technology"},
			GrowthScore:      80,
			Salary:           "$90k-$160k",
			Demand:           types.DemandHigh,
		},
		{
			ID:               "data-scientist",
			Title:            "Data Scientist",
			Category:         "Data Science",
			DifficultyLevel:  types.LevelAdvanced,
			RequiredSkills:   []string{"Python", "Statistics", "Machine Learning", "SQL"},
			RelatedInterests: []string{"Mathematics"},
			GrowthScore:      90,
			Salary:           "$100k-$180k",
			Demand:           types.DemandHigh,
		},
		{
			ID:               "ux-designer",
			Title:            "UX Designer",
			Category:         "Design",
			DifficultyLevel:  types.LevelBeginner,
			RequiredSkills:   []string{"Figma", "User Research"},
			RelatedInterests: []string{"Design"},
			GrowthScore:      60,
			Salary:           "competitive",
			Demand:           types.DemandMedium,
		},
	}
}

func rankProfile() *types.UserProfile {
	return &types.UserProfile{
		Skills:          []string{"Go", "SQL"},
		Interests:       []string{"Technology"},
		ExperienceLevel: types.LevelIntermediate,
		YearsExperience: 2,
	}
}

func TestRank_ReturnsSortedMatches(t *testing.T) {
	matches, err := Rank(rankProfile(), rankCatalog(), nil, Options{})

	require.NoError(t, err)
	require.Len(t, matches, 3)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Breakdown.Hybrid, matches[i].Breakdown.Hybrid)
	}
	assert.Equal(t, "backend-developer", matches[0].Career.ID)
}

func TestRank_TopNTruncates(t *testing.T) {
	matches, err := Rank(rankProfile(), rankCatalog(), nil, Options{TopN: 2})

	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestRank_TopNLargerThanCatalog(t *testing.T) {
	catalog := rankCatalog()[:1]

	matches, err := Rank(rankProfile(), catalog, nil, Options{TopN: 3})

	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestRank_EmptyCatalogReturnsEmptyList(t *testing.T) {
	matches, err := Rank(rankProfile(), nil, nil, Options{})

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRank_NilProfileIsValidationError(t *testing.T) {
	_, err := Rank(nil, rankCatalog(), nil, Options{})

	var validationErr *types.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestRank_InvalidCareerIsValidationError(t *testing.T) {
	catalog := rankCatalog()
	catalog[1].Title = "" // required field

	_, err := Rank(rankProfile(), catalog, nil, Options{})

	var validationErr *types.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Subject, "data-scientist")
}

func TestRank_DegradedWithoutCohort(t *testing.T) {
	matches, err := Rank(rankProfile(), rankCatalog(), nil, Options{})

	require.NoError(t, err)
	for _, m := range matches {
		assert.True(t, m.Degraded)
	}
}

func TestRank_CohortBucketClearsDegradedFlag(t *testing.T) {
	cohort := &types.CohortStats{
		Buckets: []types.CohortBucket{
			{
				Category:       "Information Technology",
				MinYears:       0,
				MaxYears:       5,
				SelectionShare: 0.3,
				SuccessRate:    0.6,
				SampleSize:     200,
			},
		},
	}

	matches, err := Rank(rankProfile(), rankCatalog(), cohort, Options{})

	require.NoError(t, err)
	for _, m := range matches {
		if m.Career.ID == "backend-developer" {
			assert.False(t, m.Degraded)
		} else {
			assert.True(t, m.Degraded)
		}
	}
}

func TestRank_MatchCarriesGapAndSalary(t *testing.T) {
	matches, err := Rank(rankProfile(), rankCatalog(), nil, Options{})

	require.NoError(t, err)

	var backend, designer *types.CareerMatch
	for i := range matches {
		switch matches[i].Career.ID {
		case "backend-developer":
			backend = &matches[i]
		case "ux-designer":
			designer = &matches[i]
		}
	}
	require.NotNil(t, backend)
	require.NotNil(t, designer)

	assert.Equal(t, []string{"Go", "SQL"}, backend.MatchedSkills)
	assert.Equal(t, []string{"Docker"}, backend.MissingSkills)
	assert.Equal(t, types.SalaryRange{Min: 90000, Max: 160000}, backend.SalaryRange)
	assert.NotEmpty(t, backend.Timeline)

	// Unparsable salary text fails closed, the match itself survives
	assert.True(t, designer.SalaryRange.LowConfidence)
	assert.Equal(t, 0, designer.SalaryRange.Min)
}

func TestRank_Deterministic(t *testing.T) {
	first, err := Rank(rankProfile(), rankCatalog(), nil, Options{})
	require.NoError(t, err)

	second, err := Rank(rankProfile(), rankCatalog(), nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRank_TieBreaksByGrowthThenTitle(t *testing.T) {
	catalog := []types.CareerDefinition{
		{ID: "b", Title: "Beta Role", Category: "X", RequiredSkills: []string{"Go"}, GrowthScore: 50},
		{ID: "a", Title: "Alpha Role", Category: "X", RequiredSkills: []string{"Go"}, GrowthScore: 50},
		{ID: "c", Title: "Gamma Role", Category: "X", RequiredSkills: []string{"Go"}, GrowthScore: 70},
	}
	profile := &types.UserProfile{ExperienceLevel: types.LevelIntermediate, Skills: []string{"Go"}}
	// Shared bucket keeps the collaborative signal identical across the
	// catalog so only the tie-break rules separate the rows
	cohort := &types.CohortStats{
		Buckets: []types.CohortBucket{
			{Category: "X", MinYears: 0, MaxYears: 50, SelectionShare: 0.3, SuccessRate: 0.5, SampleSize: 100},
		},
	}

	matches, err := Rank(profile, catalog, cohort, Options{})

	require.NoError(t, err)
	require.Len(t, matches, 3)
	// Identical content scores: growth breaks the first tie, title the second
	assert.Equal(t, "c", matches[0].Career.ID)
	assert.Equal(t, "a", matches[1].Career.ID)
	assert.Equal(t, "b", matches[2].Career.ID)
}

func TestTargetCompanies_CategoryFallbackAndCap(t *testing.T) {
	own := targetCompanies(&types.CareerDefinition{
		TopCompanies: []string{"Acme", "Globex"},
	})
	assert.Equal(t, []string{"Acme", "Globex"}, own)

	fallback := targetCompanies(&types.CareerDefinition{Category: "Design"})
	assert.NotEmpty(t, fallback)
	assert.LessOrEqual(t, len(fallback), 8)

	unknown := targetCompanies(&types.CareerDefinition{Category: "Underwater Basket Weaving"})
	assert.Empty(t, unknown)
}
