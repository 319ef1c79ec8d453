package placement

import (
	"fmt"
	"sort"

	"github.com/mkaplan/careercompass/internal/skills"
	"github.com/mkaplan/careercompass/internal/types"
)

const (
	maxInsights          = 5
	maxSupplementalAreas = 4
	targetProjectRange   = "3-5 projects"
)

// buildInsights produces short deterministic summaries of coverage, top
// strength and top gap. Templated text only; narrative prose is the
// enrichment collaborator's job.
func buildInsights(profile *types.UserProfile, strength types.ProfileStrength, target *types.CareerDefinition, gap skills.GapAnalysis) []string {
	insights := make([]string, 0, maxInsights)

	if target != nil {
		insights = append(insights, fmt.Sprintf(
			"You already cover %d of %d required skills for %s (%.0f%%)",
			len(gap.Matched), len(gap.Matched)+len(gap.Missing), target.Title, gap.Coverage*100))
		if len(gap.Missing) > 0 {
			insights = append(insights, fmt.Sprintf("Biggest gap to close: %s", gap.Missing[0]))
		}
	}

	switch {
	case len(profile.Skills) >= 5:
		insights = append(insights, "Strong skill portfolio increases your marketability")
	case len(profile.Skills) >= 3:
		insights = append(insights, "Good skill foundation; consider adding 2-3 more in-demand skills")
	default:
		insights = append(insights, "Hands-on projects can compensate for a small skill set")
	}

	switch {
	case profile.YearsExperience >= 3:
		insights = append(insights, "Solid work experience is a major advantage")
	case profile.YearsExperience >= 1:
		insights = append(insights, "Building experience; focus on quality projects")
	}

	if profile.PortfolioURL != "" {
		insights = append(insights, "Portfolio showcases your work effectively")
	} else {
		insights = append(insights, "A portfolio is crucial for standing out")
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// buildImprovementAreas derives one area per missing skill, tagged by
// importance tercile (Critical for the first third, High for the next,
// Medium for the rest), then appends profile-level suggestions. The final
// order is a stable sort by priority, so identical input always yields the
// identical list.
func buildImprovementAreas(profile *types.UserProfile, target *types.CareerDefinition, gap skills.GapAnalysis) []types.ImprovementArea {
	areas := make([]types.ImprovementArea, 0, len(gap.Missing)+maxSupplementalAreas)

	total := len(gap.Missing)
	for i, skill := range gap.Missing {
		areas = append(areas, types.ImprovementArea{
			Area:       skill,
			Current:    "Not yet learned",
			Target:     "Working proficiency",
			Suggestion: fmt.Sprintf("Learn %s through a structured course and apply it in a project", skill),
			Impact:     skillImpact(i, total),
			Priority:   skillPriority(i, total),
		})
	}

	areas = append(areas, supplementalAreas(profile)...)

	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Priority.Rank() < areas[j].Priority.Rank()
	})
	return areas
}

// skillPriority tags a missing skill by its position in the importance order.
func skillPriority(index, total int) types.Priority {
	if total == 0 {
		return types.PriorityLow
	}
	switch {
	case index*3 < total:
		return types.PriorityCritical
	case index*3 < total*2:
		return types.PriorityHigh
	default:
		return types.PriorityMedium
	}
}

func skillImpact(index, total int) string {
	switch skillPriority(index, total) {
	case types.PriorityCritical:
		return "+10-15% placement probability"
	case types.PriorityHigh:
		return "+5-10% placement probability"
	default:
		return "+2-5% placement probability"
	}
}

// supplementalAreas covers the profile-level gaps beyond individual skills:
// portfolio, projects, certifications and experience.
func supplementalAreas(profile *types.UserProfile) []types.ImprovementArea {
	areas := make([]types.ImprovementArea, 0, maxSupplementalAreas)

	if profile.PortfolioURL == "" {
		areas = append(areas, types.ImprovementArea{
			Area:       "Portfolio",
			Current:    "No portfolio",
			Target:     "Professional portfolio",
			Suggestion: "Create a portfolio site showcasing your 3-5 best projects",
			Impact:     "+10-12% placement probability",
			Priority:   types.PriorityCritical,
		})
	}

	if profile.ProjectsCompleted < 3 {
		areas = append(areas, types.ImprovementArea{
			Area:       "Projects",
			Current:    fmt.Sprintf("%d projects", profile.ProjectsCompleted),
			Target:     targetProjectRange,
			Suggestion: "Complete 2-3 real-world projects with a modern stack",
			Impact:     "+8-10% placement probability",
			Priority:   types.PriorityHigh,
		})
	}

	if len(profile.Certifications) == 0 {
		areas = append(areas, types.ImprovementArea{
			Area:       "Certifications",
			Current:    "No certifications",
			Target:     "1-2 relevant certifications",
			Suggestion: "Get certified in your primary skill",
			Impact:     "+5-7% placement probability",
			Priority:   types.PriorityMedium,
		})
	}

	if profile.YearsExperience == 0 {
		areas = append(areas, types.ImprovementArea{
			Area:       "Experience",
			Current:    "No professional experience",
			Target:     "Internship or freelance work",
			Suggestion: "Gain 6-12 months of internship or freelance experience",
			Impact:     "+15-20% placement probability",
			Priority:   types.PriorityHigh,
		})
	}

	return areas
}
