package scoring

import (
	"strings"

	"github.com/mkaplan/careercompass/internal/skills"
	"github.com/mkaplan/careercompass/internal/types"
)

// ScoreContent computes the content-based similarity between a profile and a
// career on the 0-100 scale. The score is a weighted sum of four normalized
// sub-signals: skill coverage (from gap analysis), interest/category overlap,
// experience-level alignment and goal alignment. Fresh-start profiles (no
// skills and no interests) are scored from the experience and goal components
// only, with those weights re-normalized to sum to 1.
func ScoreContent(
	n *skills.Normalizer,
	profile *types.UserProfile,
	career *types.CareerDefinition,
	gap skills.GapAnalysis,
	w Weights,
) float64 {
	w = w.Normalized()

	coverage := gap.Coverage
	interest := interestOverlapScore(profile, career)
	experience := experienceAlignmentScore(profile.ExperienceLevel, career.DifficultyLevel)
	goal := goalAlignmentScore(profile, career)

	if profile.FreshStart() {
		// No skill or interest signal to score against; fall back to the
		// remaining components with re-normalized weights.
		remaining := w.ExperienceAlignment + w.GoalAlignment
		if remaining <= 0 {
			return 0
		}
		score := (w.ExperienceAlignment*experience + w.GoalAlignment*goal) / remaining
		return clamp100(100 * score)
	}

	score := w.SkillCoverage*coverage +
		w.InterestOverlap*interest +
		w.ExperienceAlignment*experience +
		w.GoalAlignment*goal

	return clamp100(100 * score)
}

// interestOverlapScore measures overlap between the profile's interests and
// preferred domains and the career's related interests and category,
// normalized by the career-side set size.
func interestOverlapScore(profile *types.UserProfile, career *types.CareerDefinition) float64 {
	careerSide := make(map[string]bool)
	for _, interest := range career.RelatedInterests {
		if key := normalizeTerm(interest); key != "" {
			careerSide[key] = true
		}
	}
	if key := normalizeTerm(career.Category); key != "" {
		careerSide[key] = true
	}
	if len(careerSide) == 0 {
		return 0
	}

	userSide := make(map[string]bool)
	for _, interest := range profile.Interests {
		if key := normalizeTerm(interest); key != "" {
			userSide[key] = true
		}
	}
	for _, domain := range profile.PreferredDomains {
		if key := normalizeTerm(domain); key != "" {
			userSide[key] = true
		}
	}

	overlap := 0
	for key := range userSide {
		if careerSide[key] {
			overlap++
		}
	}

	return clamp01(float64(overlap) / float64(len(careerSide)))
}

// experienceAlignmentScore maps ordinal distance between the profile's level
// and the career's difficulty: exact match 1.0, one step 0.5, two steps 0.0.
func experienceAlignmentScore(user, career types.ExperienceLevel) float64 {
	distance := user.Ordinal() - career.Ordinal()
	if distance < 0 {
		distance = -distance
	}
	switch distance {
	case 0:
		return 1.0
	case 1:
		return 0.5
	default:
		return 0.0
	}
}

// goalAlignmentScore returns 1.0 when the career's title or category appears
// among the profile's primary objectives or preferred domains.
func goalAlignmentScore(profile *types.UserProfile, career *types.CareerDefinition) float64 {
	title := normalizeTerm(career.Title)
	category := normalizeTerm(career.Category)

	goals := make([]string, 0, len(profile.PrimaryObjectives)+len(profile.PreferredDomains))
	goals = append(goals, profile.PrimaryObjectives...)
	goals = append(goals, profile.PreferredDomains...)

	for _, goal := range goals {
		key := normalizeTerm(goal)
		if key == "" {
			continue
		}
		if key == title || key == category {
			return 1.0
		}
		// Partial containment covers goals like "backend" vs "Backend Developer"
		if title != "" && (strings.Contains(title, key) || strings.Contains(key, title)) {
			return 1.0
		}
	}
	return 0.0
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
