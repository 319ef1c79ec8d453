// Package ranking blends content and collaborative scores into ranked career
// matches with explanatory breakdowns.
package ranking

import (
	"fmt"
	"math"
	"sort"

	"github.com/mkaplan/careercompass/internal/scoring"
	"github.com/mkaplan/careercompass/internal/skills"
	"github.com/mkaplan/careercompass/internal/types"
)

// Options controls a ranking run. The zero value is usable: TopN <= 0 returns
// every career, zero Weights fall back to the defaults and a nil Normalizer
// gets the built-in synonym table.
type Options struct {
	TopN       int
	Weights    scoring.Weights
	Normalizer *skills.Normalizer
}

// Rank scores every career in the snapshot against the profile and returns
// the top-N matches sorted by hybrid score descending, tie-broken by growth
// score descending and then title ascending (a reproducible total order).
// Structural validation failures are rejected up front; an empty catalog
// returns an empty list. Pure over its inputs: no shared state is touched.
func Rank(
	profile *types.UserProfile,
	careers []types.CareerDefinition,
	cohort *types.CohortStats,
	opts Options,
) ([]types.CareerMatch, error) {
	if profile == nil {
		return nil, &types.ValidationError{Subject: "profile", Cause: fmt.Errorf("profile is nil")}
	}
	if err := profile.Validate(); err != nil {
		return nil, &types.ValidationError{Subject: "profile", Cause: err}
	}
	for i := range careers {
		if err := careers[i].Validate(); err != nil {
			return nil, &types.ValidationError{Subject: fmt.Sprintf("career %q", careers[i].ID), Cause: err}
		}
	}

	normalizer := opts.Normalizer
	if normalizer == nil {
		normalizer = skills.NewNormalizer(nil)
	}
	weights := opts.Weights.Normalized()

	matches := make([]types.CareerMatch, 0, len(careers))
	for i := range careers {
		career := careers[i]

		gap := skills.AnalyzeGap(normalizer, profile.Skills, career.RequiredSkills)
		content := scoring.ScoreContent(normalizer, profile, &career, gap, weights)
		collaborative, degraded := scoring.ScoreCollaborative(profile, &career, cohort)
		hybrid := weights.ContentBlend*content + weights.CollaborativeBlend*collaborative

		matches = append(matches, types.CareerMatch{
			Career:          career,
			MatchPercentage: int(math.Round(hybrid)),
			Breakdown: types.ScoreBreakdown{
				ContentBased:  round2(content),
				Collaborative: round2(collaborative),
				Hybrid:        round2(hybrid),
			},
			RequiredSkills:  career.RequiredSkills,
			MatchedSkills:   gap.Matched,
			MissingSkills:   gap.Missing,
			Timeline:        EstimateTimeline(profile, &career, len(gap.Missing)),
			SalaryRange:     ParseSalaryRange(career.Salary),
			TargetCompanies: targetCompanies(&career),
			Degraded:        degraded,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Breakdown.Hybrid != matches[j].Breakdown.Hybrid {
			return matches[i].Breakdown.Hybrid > matches[j].Breakdown.Hybrid
		}
		if matches[i].Career.GrowthScore != matches[j].Career.GrowthScore {
			return matches[i].Career.GrowthScore > matches[j].Career.GrowthScore
		}
		return matches[i].Career.Title < matches[j].Career.Title
	})

	if opts.TopN > 0 && opts.TopN < len(matches) {
		matches = matches[:opts.TopN]
	}

	return matches, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
