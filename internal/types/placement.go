package types

// Confidence represents the tier of a placement prediction.
type Confidence string

// Confidence tiers
const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Priority ranks an improvement area.
type Priority string

// Improvement priorities in descending urgency
const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Rank returns the sort position of the priority (lower sorts first).
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// ImprovementArea is one prioritized suggestion for raising placement
// probability.
type ImprovementArea struct {
	Area       string   `json:"area"`
	Current    string   `json:"current,omitempty"`
	Target     string   `json:"target,omitempty"`
	Suggestion string   `json:"suggestion"`
	Impact     string   `json:"impact"`
	Priority   Priority `json:"priority"`
}

// ProfileStrength holds bounded sub-scores summarizing a user's readiness
// independent of any specific target career. Skills, experience and projects
// are on a 0-10 scale; certifications on 0-5.
type ProfileStrength struct {
	Skills         int `json:"skills"`
	Experience     int `json:"experience"`
	Projects       int `json:"projects"`
	Certifications int `json:"certifications"`
}

// PlacementPrediction is the output of the placement predictor. Ordering of
// insights and improvement areas is deterministic for identical input.
type PlacementPrediction struct {
	Probability      int               `json:"probability"` // 0-100
	Confidence       Confidence        `json:"confidence"`
	Insights         []string          `json:"insights"`
	ImprovementAreas []ImprovementArea `json:"improvement_areas"`
	ProfileStrength  ProfileStrength   `json:"profile_strength"`
}
