package types

// Resource is a pointer to learning material attached to a milestone.
type Resource struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url,omitempty"`
}

// Milestone is one ordered stage of a roadmap. The ID is a stable hash of
// (career id, stage index, sorted skills) so regenerating a roadmap for
// unchanged inputs yields identical ids across sessions.
type Milestone struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Duration           string     `json:"duration"`
	DurationWeeks      int        `json:"duration_weeks"`
	Skills             []string   `json:"skills"`
	Resources          []Resource `json:"resources"`
	CompletionCriteria []string   `json:"completion_criteria"`
	Order              int        `json:"order"`
}

// Roadmap is the generated milestone sequence from current skill coverage to
// job-ready state for one target career.
type Roadmap struct {
	CareerPath             string          `json:"career_path"`
	TotalDuration          string          `json:"total_duration"`
	EstimatedMonths        int             `json:"estimated_months"`
	DifficultyLevel        ExperienceLevel `json:"difficulty_level"`
	EstimatedPlacementDate string          `json:"estimated_placement_date"`
	Milestones             []Milestone     `json:"milestones"`
}
