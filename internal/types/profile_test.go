package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfile_Validate(t *testing.T) {
	valid := &UserProfile{
		Skills:          []string{"Go"},
		YearsExperience: 3,
	}
	assert.NoError(t, valid.Validate())

	empty := &UserProfile{}
	assert.NoError(t, empty.Validate(), "empty profile is a valid fresh start")

	negative := &UserProfile{YearsExperience: -1}
	assert.Error(t, negative.Validate())

	negativeProjects := &UserProfile{ProjectsCompleted: -2}
	assert.Error(t, negativeProjects.Validate())
}

func TestUserProfile_FreshStart(t *testing.T) {
	assert.True(t, (&UserProfile{}).FreshStart())
	assert.True(t, (&UserProfile{StartingFresh: true, Skills: []string{"Go"}}).FreshStart())
	assert.False(t, (&UserProfile{Skills: []string{"Go"}}).FreshStart())
	assert.False(t, (&UserProfile{Interests: []string{"Technology"}}).FreshStart())
}

func TestExperienceLevel_Ordinal(t *testing.T) {
	assert.Equal(t, 0, LevelBeginner.Ordinal())
	assert.Equal(t, 1, LevelIntermediate.Ordinal())
	assert.Equal(t, 2, LevelAdvanced.Ordinal())
	assert.Equal(t, 1, ExperienceLevel("").Ordinal(), "unknown level is neutral")
}

func TestCareerDefinition_Validate(t *testing.T) {
	valid := &CareerDefinition{ID: "x", Title: "X", GrowthScore: 50}
	assert.NoError(t, valid.Validate())

	missingTitle := &CareerDefinition{ID: "x"}
	assert.Error(t, missingTitle.Validate())

	badGrowth := &CareerDefinition{ID: "x", Title: "X", GrowthScore: 150}
	assert.Error(t, badGrowth.Validate())
}
