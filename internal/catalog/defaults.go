package catalog

import (
	"strings"

	"github.com/mkaplan/careercompass/internal/types"
)

// industriesByCategory maps catalog categories to default industry lists.
var industriesByCategory = map[string][]string{
	"it":           {"Technology & Software", "E-commerce & Retail"},
	"data science": {"Technology & Software", "Finance & Banking", "Healthcare"},
	"design":       {"Technology & Software", "Media & Entertainment"},
	"marketing":    {"E-commerce & Retail", "Media & Entertainment"},
	"finance":      {"Finance & Banking", "Consulting"},
	"security":     {"Technology & Software", "Finance & Banking", "Government"},
	"cloud":        {"Technology & Software"},
}

// ApplyDefaults fills optional reference fields the admin surface did not
// declare: an experience range inferred from title keywords, industries from
// the category, and a medium demand level. It never overwrites declared
// values.
func ApplyDefaults(career *types.CareerDefinition) {
	if career.ExperienceRange == nil {
		career.ExperienceRange = inferExperienceRange(career.Title)
	}
	if len(career.Industries) == 0 {
		career.Industries = industriesByCategory[strings.ToLower(strings.TrimSpace(career.Category))]
	}
	if career.Demand == "" {
		career.Demand = types.DemandMedium
	}
	if career.DifficultyLevel == "" {
		career.DifficultyLevel = types.LevelIntermediate
	}
}

// inferExperienceRange guesses a typical years-of-experience band from title
// keywords. Mid-level is the default.
func inferExperienceRange(title string) *types.ExperienceRange {
	lower := strings.ToLower(title)

	entryWords := []string{"junior", "entry", "intern", "trainee", "associate"}
	seniorWords := []string{"senior", "lead", "principal", "architect", "director"}
	managerWords := []string{"manager", "head", "chief"}

	for _, word := range entryWords {
		if strings.Contains(lower, word) {
			return &types.ExperienceRange{Min: 0, Max: 2}
		}
	}
	for _, word := range managerWords {
		if strings.Contains(lower, word) {
			return &types.ExperienceRange{Min: 7, Max: 20}
		}
	}
	for _, word := range seniorWords {
		if strings.Contains(lower, word) {
			return &types.ExperienceRange{Min: 5, Max: 15}
		}
	}

	return &types.ExperienceRange{Min: 2, Max: 5}
}
