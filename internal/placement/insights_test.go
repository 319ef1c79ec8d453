package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaplan/careercompass/internal/skills"
	"github.com/mkaplan/careercompass/internal/types"
)

func TestBuildImprovementAreas_TercilePriorities(t *testing.T) {
	n := skills.NewNormalizer(nil)
	career := &types.CareerDefinition{
		ID:             "data-scientist",
		Title:          "Data Scientist",
		RequiredSkills: []string{"Python", "Statistics", "Machine Learning", "SQL", "Pandas", "Visualization"},
	}
	profile := &types.UserProfile{PortfolioURL: "https://example.dev", ProjectsCompleted: 5, Certifications: []string{"x"}, YearsExperience: 2}
	gap := skills.AnalyzeGap(n, profile.Skills, career.RequiredSkills)

	areas := buildImprovementAreas(profile, career, gap)

	// Six missing skills, no supplemental areas: two per tercile
	require.Len(t, areas, 6)
	byArea := make(map[string]types.Priority, len(areas))
	for _, a := range areas {
		byArea[a.Area] = a.Priority
	}
	assert.Equal(t, types.PriorityCritical, byArea["Python"])
	assert.Equal(t, types.PriorityCritical, byArea["Statistics"])
	assert.Equal(t, types.PriorityHigh, byArea["Machine Learning"])
	assert.Equal(t, types.PriorityHigh, byArea["SQL"])
	assert.Equal(t, types.PriorityMedium, byArea["Pandas"])
	assert.Equal(t, types.PriorityMedium, byArea["Visualization"])
}

func TestBuildImprovementAreas_SortedByPriority(t *testing.T) {
	n := skills.NewNormalizer(nil)
	career := &types.CareerDefinition{
		ID:             "backend-developer",
		Title:          "Backend Developer",
		RequiredSkills: []string{"Go", "SQL", "Docker"},
	}
	profile := &types.UserProfile{} // triggers all supplemental areas
	gap := skills.AnalyzeGap(n, profile.Skills, career.RequiredSkills)

	areas := buildImprovementAreas(profile, career, gap)

	require.NotEmpty(t, areas)
	for i := 1; i < len(areas); i++ {
		assert.LessOrEqual(t, areas[i-1].Priority.Rank(), areas[i].Priority.Rank())
	}
}

func TestSupplementalAreas_OnlyMissingAspects(t *testing.T) {
	complete := supplementalAreas(&types.UserProfile{
		PortfolioURL:      "https://example.dev",
		ProjectsCompleted: 4,
		Certifications:    []string{"cert"},
		YearsExperience:   2,
	})
	assert.Empty(t, complete)

	bare := supplementalAreas(&types.UserProfile{})
	require.Len(t, bare, 4)

	names := make([]string, 0, len(bare))
	for _, a := range bare {
		names = append(names, a.Area)
	}
	assert.Equal(t, []string{"Portfolio", "Projects", "Certifications", "Experience"}, names)
}

func TestBuildInsights_CoverageAndGapLeadWithTarget(t *testing.T) {
	n := skills.NewNormalizer(nil)
	career := &types.CareerDefinition{
		ID:             "backend-developer",
		Title:          "Backend Developer",
		RequiredSkills: []string{"Go", "SQL", "Docker", "Kubernetes"},
	}
	profile := &types.UserProfile{Skills: []string{"Go", "SQL"}}
	gap := skills.AnalyzeGap(n, profile.Skills, career.RequiredSkills)

	insights := buildInsights(profile, profileStrength(profile), career, gap)

	require.NotEmpty(t, insights)
	assert.Contains(t, insights[0], "2 of 4")
	assert.Contains(t, insights[0], "Backend Developer")
	assert.Contains(t, insights[1], "Docker")
	assert.LessOrEqual(t, len(insights), 5)
}

func TestBuildInsights_NoTargetStillProducesGuidance(t *testing.T) {
	profile := &types.UserProfile{Skills: []string{"Go"}}

	insights := buildInsights(profile, profileStrength(profile), nil, skills.GapAnalysis{})

	assert.NotEmpty(t, insights)
	assert.LessOrEqual(t, len(insights), 5)
}
