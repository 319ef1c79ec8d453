package scoring

import (
	"github.com/mkaplan/careercompass/internal/types"
)

// Weighting of the cohort sub-signals when a bucket exists
const (
	cohortSelectionWeight  = 0.5
	cohortSuccessWeight    = 0.3
	cohortExperienceWeight = 0.2
)

// Weighting of the proxy fallback when no cohort bucket exists
const (
	proxyGrowthWeight = 0.6
	proxyDemandWeight = 0.4
)

// ScoreCollaborative computes the collaborative-filtering signal on the 0-100
// scale from precomputed cohort aggregates. When no bucket covers the
// profile's (category, experience) coordinates the score falls back to the
// career's growth score and demand level as a weak proxy; degraded reports
// that fallback so callers can flag the match as lower-confidence. Pure
// lookup, no sampling: identical inputs always yield the identical score.
func ScoreCollaborative(
	profile *types.UserProfile,
	career *types.CareerDefinition,
	cohort *types.CohortStats,
) (score float64, degraded bool) {
	bucket := cohort.Lookup(career.Category, profile.YearsExperience)
	if bucket == nil || bucket.SampleSize <= 0 {
		return proxyScore(career), true
	}

	signal := cohortSelectionWeight*clamp01(bucket.SelectionShare) +
		cohortSuccessWeight*clamp01(bucket.SuccessRate) +
		cohortExperienceWeight*experienceRangeScore(profile.YearsExperience, career.ExperienceRange)

	return clamp100(100 * signal), false
}

// proxyScore is the documented degradation path: growth score and demand
// stand in for the missing cohort signal.
func proxyScore(career *types.CareerDefinition) float64 {
	growth := clamp01(float64(career.GrowthScore) / 100.0)

	var demand float64
	switch career.Demand {
	case types.DemandHigh:
		demand = 1.0
	case types.DemandMedium:
		demand = 0.6
	case types.DemandLow:
		demand = 0.3
	default:
		demand = 0.5 // unknown demand is neutral
	}

	return clamp100(100 * (proxyGrowthWeight*growth + proxyDemandWeight*demand))
}

// experienceRangeScore measures how well the profile's years of experience
// fit the career's typical range. Careers without a declared range score
// neutral; under-experience decays linearly with the gap.
func experienceRangeScore(years int, r *types.ExperienceRange) float64 {
	if r == nil {
		return 0.5
	}
	if years >= r.Min && years <= r.Max {
		return 1.0
	}
	if years > r.Max {
		return 0.8 // over-qualified, still a fit
	}
	gap := float64(r.Min - years)
	return clamp01(1.0 - 0.2*gap)
}
