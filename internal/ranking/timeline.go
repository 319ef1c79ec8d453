package ranking

import (
	"fmt"
	"math"

	"github.com/mkaplan/careercompass/internal/types"
)

const (
	defaultBaseMonths  = 6
	monthsPerGapSkill  = 2
	minTimelineMonths  = 3
	maxTimelineMonths  = 24
	fullTimeMultiplier = 0.7
	minimalMultiplier  = 1.5
	fastPaceMultiplier = 0.8
	thoroughMultiplier = 1.2
)

// EstimateTimeline derives a readiness timeline from the career's learning
// duration, lengthened proportionally by the number of missing skills and
// adjusted for the profile's experience level, weekly time commitment and
// learning pace. The result is clamped to 3-24 months.
func EstimateTimeline(profile *types.UserProfile, career *types.CareerDefinition, missingCount int) string {
	months := EstimateTimelineMonths(profile, career, missingCount)
	return FormatMonths(months)
}

// EstimateTimelineMonths is the numeric form of EstimateTimeline.
func EstimateTimelineMonths(profile *types.UserProfile, career *types.CareerDefinition, missingCount int) int {
	base := career.LearningDurationMonths
	if base <= 0 {
		base = defaultBaseMonths
	}

	months := float64(base + missingCount*monthsPerGapSkill)

	switch profile.ExperienceLevel {
	case types.LevelBeginner:
		months += 3
	case types.LevelAdvanced:
		months -= 2
	}

	switch profile.TimeCommitment {
	case types.TimeFullTime:
		months *= fullTimeMultiplier
	case types.TimeMinimal:
		months *= minimalMultiplier
	}

	switch profile.LearningPace {
	case "fast":
		months *= fastPaceMultiplier
	case "thorough":
		months *= thoroughMultiplier
	}

	clamped := int(math.Ceil(months))
	if clamped < minTimelineMonths {
		clamped = minTimelineMonths
	}
	if clamped > maxTimelineMonths {
		clamped = maxTimelineMonths
	}
	return clamped
}

// FormatMonths renders a month count as human-readable timeline text.
func FormatMonths(months int) string {
	if months < 12 {
		return fmt.Sprintf("%d months", months)
	}
	years := float64(months) / 12.0
	return fmt.Sprintf("%.1f years (%d months)", years, months)
}
