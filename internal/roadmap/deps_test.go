package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkaplan/careercompass/internal/skills"
)

func TestOrderByDependencies_PrerequisiteFrontLoaded(t *testing.T) {
	n := skills.NewNormalizer(nil)

	ordered := orderByDependencies(n, []string{"React", "JavaScript", "CSS"})

	assert.Equal(t, []string{"JavaScript", "React", "CSS"}, ordered)
}

func TestOrderByDependencies_ChainResolved(t *testing.T) {
	n := skills.NewNormalizer(nil)

	ordered := orderByDependencies(n, []string{"Deep Learning", "Machine Learning", "Python", "Statistics"})

	index := make(map[string]int, len(ordered))
	for i, skill := range ordered {
		index[n.Key(skill)] = i
	}
	assert.Less(t, index["python"], index["machine learning"])
	assert.Less(t, index["statistics"], index["machine learning"])
	assert.Less(t, index["machine learning"], index["deep learning"])
}

func TestOrderByDependencies_PrerequisiteOutsideGapIgnored(t *testing.T) {
	n := skills.NewNormalizer(nil)

	// Docker is not in the gap, so Kubernetes keeps its position
	ordered := orderByDependencies(n, []string{"Kubernetes", "Terraform"})

	assert.Equal(t, []string{"Kubernetes", "Terraform"}, ordered)
}

func TestOrderByDependencies_PreservesImportanceOrderOtherwise(t *testing.T) {
	n := skills.NewNormalizer(nil)

	ordered := orderByDependencies(n, []string{"Go", "SQL", "Docker"})

	assert.Equal(t, []string{"Go", "SQL", "Docker"}, ordered)
}

func TestOrderByDependencies_Deterministic(t *testing.T) {
	n := skills.NewNormalizer(nil)
	missing := []string{"React", "Node.js", "TypeScript", "JavaScript"}

	first := orderByDependencies(n, missing)
	second := orderByDependencies(n, missing)

	assert.Equal(t, first, second)
}

func TestResourcesForSkills_CuratedWithGenericFallback(t *testing.T) {
	n := skills.NewNormalizer(nil)

	resources := resourcesForSkills(n, []string{"Python", "Underwater Basket Weaving"})

	assert.Len(t, resources, 2)
	assert.Equal(t, "Python for Everybody", resources[0].Title)
	assert.Equal(t, "Comprehensive Underwater Basket Weaving course", resources[1].Title)
}

func TestResourcesForSkills_CappedAtThree(t *testing.T) {
	n := skills.NewNormalizer(nil)

	resources := resourcesForSkills(n, []string{"Python", "SQL", "Docker", "Git"})

	assert.Len(t, resources, 3)
}
