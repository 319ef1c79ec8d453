// Package scoring computes the content-based and collaborative match signals
// that the hybrid ranker blends into a single career match score.
package scoring

// Weights holds every tunable scoring constant as an explicit policy value.
// The defaults are the documented policy; callers may override them from
// configuration. Content sub-weights should sum to 1.0 and blend weights
// should sum to 1.0 (Normalized() repairs drift).
type Weights struct {
	// Content sub-signal weights
	SkillCoverage       float64 `json:"skill_coverage"`
	InterestOverlap     float64 `json:"interest_overlap"`
	ExperienceAlignment float64 `json:"experience_alignment"`
	GoalAlignment       float64 `json:"goal_alignment"`

	// Hybrid blend weights
	ContentBlend       float64 `json:"content_blend"`
	CollaborativeBlend float64 `json:"collaborative_blend"`
}

// DefaultWeights returns the documented default scoring policy.
func DefaultWeights() Weights {
	return Weights{
		SkillCoverage:       0.45,
		InterestOverlap:     0.20,
		ExperienceAlignment: 0.20,
		GoalAlignment:       0.15,
		ContentBlend:        0.60,
		CollaborativeBlend:  0.40,
	}
}

// Normalized returns a copy with the content sub-weights scaled to sum to 1.0
// and the blend weights scaled to sum to 1.0. Weight sets that sum to zero
// are replaced by the defaults.
func (w Weights) Normalized() Weights {
	contentSum := w.SkillCoverage + w.InterestOverlap + w.ExperienceAlignment + w.GoalAlignment
	blendSum := w.ContentBlend + w.CollaborativeBlend

	defaults := DefaultWeights()
	out := w
	if contentSum <= 0 {
		out.SkillCoverage = defaults.SkillCoverage
		out.InterestOverlap = defaults.InterestOverlap
		out.ExperienceAlignment = defaults.ExperienceAlignment
		out.GoalAlignment = defaults.GoalAlignment
	} else {
		out.SkillCoverage /= contentSum
		out.InterestOverlap /= contentSum
		out.ExperienceAlignment /= contentSum
		out.GoalAlignment /= contentSum
	}

	if blendSum <= 0 {
		out.ContentBlend = defaults.ContentBlend
		out.CollaborativeBlend = defaults.CollaborativeBlend
	} else {
		out.ContentBlend /= blendSum
		out.CollaborativeBlend /= blendSum
	}

	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
