package roadmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaplan/careercompass/internal/skills"
	"github.com/mkaplan/careercompass/internal/types"
)

func roadmapCareer() *types.CareerDefinition {
	return &types.CareerDefinition{
		ID:              "backend-developer",
		Title:           "Backend Developer",
		Category:        "Information Technology",
		DifficultyLevel: types.LevelIntermediate,
		RequiredSkills:  []string{"Go", "SQL", "Docker", "Kubernetes", "CI/CD"},
	}
}

func pinnedNow() time.Time {
	return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func TestGenerate_GapMilestonesCoverMissingSkillsExactly(t *testing.T) {
	profile := &types.UserProfile{
		Skills:          []string{"Go", "SQL", "Git"},
		ExperienceLevel: types.LevelIntermediate,
	}

	roadmap, err := Generate(profile, roadmapCareer(), Options{Now: pinnedNow()})

	require.NoError(t, err)
	require.NotEmpty(t, roadmap.Milestones)

	n := skills.NewNormalizer(nil)
	missing := n.KeySet([]string{"Docker", "Kubernetes", "CI/CD"})

	covered := make(map[string]bool)
	for _, ms := range roadmap.Milestones {
		for _, skill := range ms.Skills {
			covered[n.Key(skill)] = true
		}
	}

	for key := range missing {
		assert.True(t, covered[key], "missing skill %s not covered", key)
	}
	for key := range covered {
		assert.True(t, missing[key], "milestone teaches %s which is not in the gap", key)
	}
}

func TestGenerate_AlreadyCoveredSkillsNotRetaught(t *testing.T) {
	profile := &types.UserProfile{
		Skills:          []string{"Go", "SQL", "Docker", "Kubernetes", "CI/CD"},
		ExperienceLevel: types.LevelIntermediate,
	}

	roadmap, err := Generate(profile, roadmapCareer(), Options{Now: pinnedNow()})

	require.NoError(t, err)
	for _, ms := range roadmap.Milestones {
		assert.Empty(t, ms.Skills, "milestone %q should teach nothing", ms.Title)
	}
}

func TestGenerate_BeginnerGetsFoundationMilestone(t *testing.T) {
	beginner := &types.UserProfile{ExperienceLevel: types.LevelBeginner}

	roadmap, err := Generate(beginner, roadmapCareer(), Options{Now: pinnedNow()})

	require.NoError(t, err)
	require.NotEmpty(t, roadmap.Milestones)
	assert.Equal(t, "Build Strong Foundation", roadmap.Milestones[0].Title)
}

func TestGenerate_ExperiencedProfileSkipsFoundation(t *testing.T) {
	profile := &types.UserProfile{
		Skills:          []string{"Go", "SQL", "Git", "Python"},
		ExperienceLevel: types.LevelAdvanced,
	}

	roadmap, err := Generate(profile, roadmapCareer(), Options{Now: pinnedNow()})

	require.NoError(t, err)
	for _, ms := range roadmap.Milestones {
		assert.NotEqual(t, "Build Strong Foundation", ms.Title)
	}
}

func TestGenerate_ClosingMilestonesAlwaysPresent(t *testing.T) {
	profile := &types.UserProfile{ExperienceLevel: types.LevelIntermediate, Skills: []string{"Go", "SQL", "Git"}}

	roadmap, err := Generate(profile, roadmapCareer(), Options{Now: pinnedNow()})

	require.NoError(t, err)
	count := len(roadmap.Milestones)
	require.GreaterOrEqual(t, count, 2)
	assert.Equal(t, "Build Real-World Projects", roadmap.Milestones[count-2].Title)
	assert.Equal(t, "Interview Preparation", roadmap.Milestones[count-1].Title)
}

func TestGenerate_OrdersAreSequential(t *testing.T) {
	profile := &types.UserProfile{ExperienceLevel: types.LevelBeginner}

	roadmap, err := Generate(profile, roadmapCareer(), Options{Now: pinnedNow()})

	require.NoError(t, err)
	for i, ms := range roadmap.Milestones {
		assert.Equal(t, i+1, ms.Order)
	}
}

func TestGenerate_NoRequirementsYieldsReadyToApply(t *testing.T) {
	career := &types.CareerDefinition{ID: "generalist", Title: "Generalist"}
	profile := &types.UserProfile{ExperienceLevel: types.LevelIntermediate}

	roadmap, err := Generate(profile, career, Options{Now: pinnedNow()})

	require.NoError(t, err)
	require.Len(t, roadmap.Milestones, 1)
	assert.Equal(t, "Ready to Apply", roadmap.Milestones[0].Title)
	assert.Equal(t, 0, roadmap.Milestones[0].DurationWeeks)
	assert.Equal(t, 0, roadmap.EstimatedMonths)
}

func TestGenerate_MilestoneIDsStableAcrossRuns(t *testing.T) {
	profile := &types.UserProfile{
		Skills:          []string{"Go", "SQL", "Git"},
		ExperienceLevel: types.LevelIntermediate,
	}

	first, err := Generate(profile, roadmapCareer(), Options{Now: pinnedNow()})
	require.NoError(t, err)
	second, err := Generate(profile, roadmapCareer(), Options{Now: pinnedNow().Add(48 * time.Hour)})
	require.NoError(t, err)

	require.Equal(t, len(first.Milestones), len(second.Milestones))
	for i := range first.Milestones {
		assert.Equal(t, first.Milestones[i].ID, second.Milestones[i].ID)
	}
}

func TestGenerate_PlacementDateFollowsTotalDuration(t *testing.T) {
	profile := &types.UserProfile{
		Skills:          []string{"Go", "SQL", "Git"},
		ExperienceLevel: types.LevelIntermediate,
	}
	now := pinnedNow()

	roadmap, err := Generate(profile, roadmapCareer(), Options{Now: now})

	require.NoError(t, err)

	totalWeeks := 0
	for _, ms := range roadmap.Milestones {
		totalWeeks += ms.DurationWeeks
	}
	expected := now.AddDate(0, 0, totalWeeks*7).Format("January 2, 2006")
	assert.Equal(t, expected, roadmap.EstimatedPlacementDate)
}

func TestGenerate_NilInputsRejected(t *testing.T) {
	_, err := Generate(nil, roadmapCareer(), Options{})
	assert.Error(t, err)

	_, err = Generate(&types.UserProfile{}, nil, Options{})
	assert.Error(t, err)
}

func TestBucketSize_Clamped(t *testing.T) {
	assert.Equal(t, DefaultBucketSize, bucketSize(0))
	assert.Equal(t, minBucketSize, bucketSize(1))
	assert.Equal(t, 3, bucketSize(3))
	assert.Equal(t, maxBucketSize, bucketSize(9))
}

func TestChunkSkills_SplitsWithRemainder(t *testing.T) {
	chunks := chunkSkills([]string{"a", "b", "c", "d", "e"}, 2)

	require.Len(t, chunks, 3)
	assert.Equal(t, []string{"a", "b"}, chunks[0])
	assert.Equal(t, []string{"c", "d"}, chunks[1])
	assert.Equal(t, []string{"e"}, chunks[2])
}

func TestAdjustForTimeline_CompressionAndClamp(t *testing.T) {
	assert.Equal(t, 15, adjustForTimeline(20, "6months"))
	assert.Equal(t, 24, adjustForTimeline(20, "5years"))
	assert.Equal(t, 20, adjustForTimeline(20, ""))
	assert.Equal(t, minTotalWeeks, adjustForTimeline(1, ""))
	assert.Equal(t, maxTotalWeeks, adjustForTimeline(500, ""))
}
