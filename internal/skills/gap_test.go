package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeGap_PartialCoverage(t *testing.T) {
	n := NewNormalizer(nil)

	gap := AnalyzeGap(n,
		[]string{"Python", "SQL"},
		[]string{"Python", "SQL", "Machine Learning", "Statistics"})

	assert.Equal(t, []string{"Python", "SQL"}, gap.Matched)
	assert.Equal(t, []string{"Machine Learning", "Statistics"}, gap.Missing)
	assert.InDelta(t, 0.5, gap.Coverage, 0.001)
}

func TestAnalyzeGap_SynonymsMatch(t *testing.T) {
	n := NewNormalizer(nil)

	gap := AnalyzeGap(n,
		[]string{"golang", "js"},
		[]string{"Go", "JavaScript", "Docker"})

	assert.Equal(t, []string{"Go", "JavaScript"}, gap.Matched)
	assert.Equal(t, []string{"Docker"}, gap.Missing)
	assert.InDelta(t, 2.0/3.0, gap.Coverage, 0.001)
}

func TestAnalyzeGap_CaseAndWhitespaceInsensitive(t *testing.T) {
	n := NewNormalizer(nil)

	gap := AnalyzeGap(n, []string{"  python  ", "DOCKER"}, []string{"Python", "Docker"})

	assert.Equal(t, []string{"Python", "Docker"}, gap.Matched)
	assert.Empty(t, gap.Missing)
	assert.Equal(t, 1.0, gap.Coverage)
}

func TestAnalyzeGap_NoRequirementsMeansFullyQualified(t *testing.T) {
	n := NewNormalizer(nil)

	gap := AnalyzeGap(n, []string{"Python"}, nil)

	assert.Empty(t, gap.Matched)
	assert.Empty(t, gap.Missing)
	assert.Equal(t, 1.0, gap.Coverage)
}

func TestAnalyzeGap_EmptyUserSkills(t *testing.T) {
	n := NewNormalizer(nil)

	gap := AnalyzeGap(n, nil, []string{"Go", "Docker"})

	assert.Empty(t, gap.Matched)
	assert.Equal(t, []string{"Go", "Docker"}, gap.Missing)
	assert.Equal(t, 0.0, gap.Coverage)
}

func TestAnalyzeGap_MissingPreservesImportanceOrder(t *testing.T) {
	n := NewNormalizer(nil)

	gap := AnalyzeGap(n,
		[]string{"SQL"},
		[]string{"Python", "SQL", "Statistics", "Machine Learning"})

	assert.Equal(t, []string{"Python", "Statistics", "Machine Learning"}, gap.Missing)
}

func TestAnalyzeGap_DuplicateRequirementsCountedOnce(t *testing.T) {
	n := NewNormalizer(nil)

	gap := AnalyzeGap(n,
		[]string{"Go"},
		[]string{"Go", "golang", "Docker", "Docker"})

	assert.Equal(t, []string{"Go"}, gap.Matched)
	assert.Equal(t, []string{"Docker"}, gap.Missing)
	assert.InDelta(t, 0.5, gap.Coverage, 0.001)
}

func TestAnalyzeGap_Deterministic(t *testing.T) {
	n := NewNormalizer(nil)
	user := []string{"Python", "Go"}
	required := []string{"Python", "Docker", "Go", "SQL"}

	first := AnalyzeGap(n, user, required)
	second := AnalyzeGap(n, user, required)

	assert.Equal(t, first, second)
}
