// Package placement estimates placement probability and improvement guidance
// from a user profile and an optional target career.
package placement

import (
	"fmt"
	"math"

	"github.com/mkaplan/careercompass/internal/skills"
	"github.com/mkaplan/careercompass/internal/types"
)

// Probability policy. Tunable, not a contract: the testable invariant is that
// probability rises with skill coverage and with years of experience, all
// else equal.
const (
	baseProbability = 40.0
	coverageWeight  = 30.0
	alignmentWeight = 15.0
	strengthWeight  = 15.0
	neutralSignal   = 0.5 // stands in for coverage/alignment when no target career is given
)

// Confidence thresholds
const (
	highConfidenceSkills   = 5
	highConfidenceYears    = 1
	mediumConfidenceSkills = 2
)

// Predict computes a placement prediction for the profile. target may be nil;
// the coverage and alignment contributions then use a neutral signal and the
// improvement areas carry no skill gaps. Deterministic: identical inputs
// yield identical output, including ordering.
func Predict(n *skills.Normalizer, profile *types.UserProfile, target *types.CareerDefinition) (*types.PlacementPrediction, error) {
	if profile == nil {
		return nil, &types.ValidationError{Subject: "profile", Cause: fmt.Errorf("profile is nil")}
	}
	if err := profile.Validate(); err != nil {
		return nil, &types.ValidationError{Subject: "profile", Cause: err}
	}
	if target != nil {
		if err := target.Validate(); err != nil {
			return nil, &types.ValidationError{Subject: "career", Cause: err}
		}
	}
	if n == nil {
		n = skills.NewNormalizer(nil)
	}

	strength := profileStrength(profile)

	coverage := neutralSignal
	alignment := neutralSignal
	var gap skills.GapAnalysis
	if target != nil {
		gap = skills.AnalyzeGap(n, profile.Skills, target.RequiredSkills)
		coverage = gap.Coverage
		alignment = levelAlignment(profile.ExperienceLevel, target.DifficultyLevel)
	}

	probability := baseProbability +
		coverageWeight*coverage +
		alignmentWeight*alignment +
		strengthWeight*strengthAverage(strength)

	clamped := int(math.Round(probability))
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 100 {
		clamped = 100
	}

	return &types.PlacementPrediction{
		Probability:      clamped,
		Confidence:       confidenceTier(profile),
		Insights:         buildInsights(profile, strength, target, gap),
		ImprovementAreas: buildImprovementAreas(profile, target, gap),
		ProfileStrength:  strength,
	}, nil
}

// profileStrength computes the bounded sub-scores: skills and projects on
// 0-10, experience on 0-10 (one point per year), certifications on 0-5.
func profileStrength(profile *types.UserProfile) types.ProfileStrength {
	strength := types.ProfileStrength{
		Skills:         len(profile.Skills) / 2,
		Experience:     profile.YearsExperience,
		Projects:       profile.ProjectsCompleted,
		Certifications: len(profile.Certifications),
	}
	if strength.Skills > 10 {
		strength.Skills = 10
	}
	if strength.Experience > 10 {
		strength.Experience = 10
	}
	if strength.Projects > 10 {
		strength.Projects = 10
	}
	if strength.Certifications > 5 {
		strength.Certifications = 5
	}
	return strength
}

// strengthAverage normalizes each sub-score to [0,1] on its own scale and
// averages them.
func strengthAverage(s types.ProfileStrength) float64 {
	return (float64(s.Skills)/10 +
		float64(s.Experience)/10 +
		float64(s.Projects)/10 +
		float64(s.Certifications)/5) / 4
}

// levelAlignment mirrors the content scorer's ordinal distance mapping.
func levelAlignment(user, career types.ExperienceLevel) float64 {
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

// confidenceTier applies the explicit rule table: high needs at least five
// skills and a year of experience, medium needs at least two skills.
func confidenceTier(profile *types.UserProfile) types.Confidence {
	switch {
	case len(profile.Skills) >= highConfidenceSkills && profile.YearsExperience >= highConfidenceYears:
		return types.ConfidenceHigh
	case len(profile.Skills) >= mediumConfidenceSkills:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}
